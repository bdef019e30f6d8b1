// File: internal/filestorage/service.go
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"revert_connect_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// imageExtensions maps accepted extensions onto themselves and content types onto an extension.
var imageExtensions = map[string]string{
	".jpg":       ".jpg",
	".jpeg":      ".jpg",
	".png":       ".png",
	".gif":       ".gif",
	".webp":      ".webp",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// FileStorageService stores uploaded images on local disk and maps them to public URLs.
type FileStorageService struct {
	storagePath   string // Base path for storing files, e.g., "./uploads"
	publicBaseURL string // URL prefix the storage path is served under, e.g., "/uploads"
	logger        *zap.Logger
}

// NewFileStorageService creates the storage path if needed.
func NewFileStorageService(cfg *config.Config, logger *zap.Logger) (*FileStorageService, error) {
	if strings.TrimSpace(cfg.UploadStoragePath) == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(cfg.UploadStoragePath, os.ModePerm); err != nil {
		logger.Error("Failed to create storage path directory", zap.String("path", cfg.UploadStoragePath), zap.Error(err))
		return nil, fmt.Errorf("failed to create storage path %s: %w", cfg.UploadStoragePath, err)
	}
	base := strings.TrimRight(cfg.UploadPublicBaseURL, "/")
	if base == "" {
		base = "/uploads"
	}
	logger.Info("FileStorageService initialized",
		zap.String("storagePath", cfg.UploadStoragePath),
		zap.String("publicBaseURL", base))
	return &FileStorageService{storagePath: cfg.UploadStoragePath, publicBaseURL: base, logger: logger.Named("FileStorage")}, nil
}

// StoragePath returns the directory served under PublicBaseURL.
func (s *FileStorageService) StoragePath() string { return s.storagePath }

// PublicBaseURL returns the URL prefix uploads are served under.
func (s *FileStorageService) PublicBaseURL() string { return s.publicBaseURL }

// SaveUploadedFile saves an uploaded image under subDir with a generated name.
// Returns the path relative to the storage path, e.g. "profile-images/<uuid>.png".
func (s *FileStorageService) SaveUploadedFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("fileHeader cannot be nil")
	}
	extension, err := imageExtension(fileHeader)
	if err != nil {
		return "", err
	}

	cleanSubDir := filepath.Clean(subDir)
	if strings.HasPrefix(cleanSubDir, "..") || filepath.IsAbs(cleanSubDir) {
		s.logger.Error("Invalid subDir, attempts to leave storage path", zap.String("subDir", subDir))
		return "", fmt.Errorf("invalid subDir path")
	}

	src, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.Error(err))
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	destinationDir := filepath.Join(s.storagePath, cleanSubDir)
	if err := os.MkdirAll(destinationDir, os.ModePerm); err != nil {
		s.logger.Error("Failed to create sub-directory for file storage", zap.String("path", destinationDir), zap.Error(err))
		return "", fmt.Errorf("failed to create directory %s: %w", destinationDir, err)
	}

	uniqueFilename := uuid.New().String() + extension
	destinationPath := filepath.Join(destinationDir, uniqueFilename)
	dst, err := os.Create(destinationPath)
	if err != nil {
		s.logger.Error("Failed to create destination file", zap.String("path", destinationPath), zap.Error(err))
		return "", fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		s.logger.Error("Failed to copy uploaded file to destination", zap.String("path", destinationPath), zap.Error(err))
		os.Remove(destinationPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("File saved successfully", zap.String("path", destinationPath))
	return filepath.ToSlash(filepath.Join(cleanSubDir, uniqueFilename)), nil
}

// PublicURL maps a relative storage path onto the URL it is served under.
func (s *FileStorageService) PublicURL(relativePath string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(filepath.ToSlash(relativePath), "/")
}

// Release deletes the file behind a URL previously returned by PublicURL.
// URLs that point elsewhere (e.g. a Firebase avatar) are left alone.
func (s *FileStorageService) Release(publicURL string) error {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	return s.DeleteFile(strings.TrimPrefix(publicURL, prefix))
}

// DeleteFile deletes a file given its path relative to the storage path.
func (s *FileStorageService) DeleteFile(relativePath string) error {
	if relativePath == "" {
		return fmt.Errorf("relative path cannot be empty")
	}
	cleanRelativePath := path.Clean(filepath.ToSlash(relativePath))
	if strings.Contains(cleanRelativePath, "..") || path.IsAbs(cleanRelativePath) {
		s.logger.Warn("Attempt to delete file with path traversal", zap.String("relativePath", relativePath))
		return fmt.Errorf("invalid file path for deletion")
	}

	fullPath := filepath.Join(s.storagePath, filepath.FromSlash(cleanRelativePath))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		s.logger.Warn("Attempt to delete non-existent file", zap.String("path", fullPath))
		return nil
	}
	if err := os.Remove(fullPath); err != nil {
		s.logger.Error("Failed to delete file", zap.String("path", fullPath), zap.Error(err))
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}

	s.logger.Info("File deleted successfully", zap.String("path", fullPath))
	return nil
}

func imageExtension(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileHeader.Filename)))
	if ext != "" {
		if canonical, ok := imageExtensions[ext]; ok {
			return canonical, nil
		}
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	if canonical, ok := imageExtensions[strings.TrimSpace(contentType)]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unsupported file type or missing extension: %s", contentType)
}
