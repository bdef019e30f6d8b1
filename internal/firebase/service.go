// File: internal/firebase/service.go
package firebase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"revert_connect_backend/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// idTokenVerifier is the part of *auth.Client the service uses.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseService verifies the ID tokens the client sends as bearer credentials.
type FirebaseService struct {
	authClient idTokenVerifier
	logger     *zap.Logger
}

// NewFirebaseService initializes the Firebase Admin SDK.
// Without a service account key it returns (nil, nil): every bearer token then resolves
// to a fetch error and the gate treats the request as anonymous.
func NewFirebaseService(cfg *config.Config, logger *zap.Logger) (*FirebaseService, error) {
	logger = logger.Named("Firebase")
	if strings.TrimSpace(cfg.FirebaseServiceAccountKeyPath) == "" {
		logger.Warn("Firebase service account key path is not configured; sessions are disabled.")
		return nil, nil
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var conf *firebase.Config
	if cfg.FirebaseProjectID != "" {
		conf = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}
	app, err := firebase.NewApp(context.Background(), conf, opt)
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &FirebaseService{authClient: authClient, logger: logger}, nil
}

// VerifyIDToken verifies a Firebase ID token and returns its claims.
// A nil service, as returned when Firebase is not configured, rejects every token.
func (s *FirebaseService) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if s == nil {
		return nil, fmt.Errorf("firebase is not configured")
	}
	if idToken == "" {
		return nil, fmt.Errorf("ID token must not be empty")
	}
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Debug("Firebase ID token verification failed", zap.Error(err))
		return nil, fmt.Errorf("failed to verify Firebase ID token: %w", err)
	}
	return token, nil
}
