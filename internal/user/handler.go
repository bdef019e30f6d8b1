// File: internal/user/handler.go
package user

import (
	"mime/multipart"
	"time"

	"revert_connect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageStore saves uploaded profile images.
type ImageStore interface {
	SaveUploadedFile(fileHeader *multipart.FileHeader, subDir string) (string, error)
	PublicURL(relativePath string) string
	Release(publicURL string) error
}

// maxProfileImageBytes caps profile image uploads.
const maxProfileImageBytes = 5 << 20

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	images  ImageStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new user handler.
func NewHandler(service Service, images ImageStore, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		images:  images,
		logger:  logger.Named("UserHandler"),
		now:     time.Now,
	}
}

// RegisterRoutes sets up the profile routes. Every route needs a signed-in user.
// The profile screen itself is never gated on completeness.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, requireUserMW gin.HandlerFunc) {
	me := router.Group("/users/me", requireUserMW)
	{
		me.GET("", h.getMe)
		me.PUT("", h.updateMe)
		me.POST("/profile-image", h.uploadProfileImage)
	}
}

func (h *Handler) getMe(c *gin.Context) {
	current := Current(c)
	if current == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	common.RespondOK(c, "User profile retrieved successfully.", ToUserResponse(current, h.now()))
}

func (h *Handler) updateMe(c *gin.Context) {
	current := Current(c)
	if current == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Update profile: invalid request body", zap.Error(err), zap.String("userID", current.ID.String()))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	updated, err := h.service.UpdateProfile(c.Request.Context(), current.ID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Profile updated successfully.", ToUserResponse(updated, h.now()))
}

func (h *Handler) uploadProfileImage(c *gin.Context) {
	current := Current(c)
	if current == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	if h.images == nil {
		common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Image uploads are not configured."))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'file' form field is required."))
		return
	}
	if fileHeader.Size > maxProfileImageBytes {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Profile images may not exceed 5MB."))
		return
	}

	relPath, err := h.images.SaveUploadedFile(fileHeader, "profile-images")
	if err != nil {
		h.logger.Warn("Profile image upload rejected", zap.Error(err), zap.String("userID", current.ID.String()))
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	previous := current.ProfileImageURL
	updated, err := h.service.SetProfileImage(c.Request.Context(), current.ID, h.images.PublicURL(relPath))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	if previous != "" && previous != updated.ProfileImageURL {
		if err := h.images.Release(previous); err != nil {
			h.logger.Warn("Failed to remove previous profile image", zap.Error(err), zap.String("url", previous))
		}
	}
	common.RespondOK(c, "Profile image uploaded successfully.", gin.H{
		"file_url": updated.ProfileImageURL,
		"user":     ToUserResponse(updated, h.now()),
	})
}
