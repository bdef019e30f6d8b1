// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/sanitize"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the profile operations.
type Service interface {
	GetOrCreateFromFirebaseToken(ctx context.Context, token *firebaseauth.Token) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*User, error)
	SetProfileImage(ctx context.Context, id uuid.UUID, url string) (*User, error)
	// FindUsers returns a user population, served from the collection cache when possible.
	FindUsers(ctx context.Context, q Query) ([]User, error)
}

// ServiceImplementation implements Service.
type ServiceImplementation struct {
	repo   Repository
	cache  *cache.Loader
	cfg    *config.Config
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, loader *cache.Loader, cfg *config.Config, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		cache:  loader,
		cfg:    cfg,
		logger: logger.Named("UserService"),
	}
}

// GetOrCreateFromFirebaseToken resolves the local user for a verified Firebase token.
// Users are created at first sign-in with the identity claims only; the profile
// itself stays incomplete until the owner fills it in.
func (s *ServiceImplementation) GetOrCreateFromFirebaseToken(ctx context.Context, token *firebaseauth.Token) (*User, error) {
	if token == nil || token.UID == "" {
		return nil, common.ErrUnauthorized.WithDetails("Firebase token has no subject.")
	}

	existing, err := s.repo.FindByFirebaseUID(ctx, token.UID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("find user by firebase uid: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.ErrUnauthorized.WithDetails("Firebase account has no email address.")
	}

	// Link a record that was created before Firebase sign-in existed for this account.
	byEmail, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		uid := token.UID
		byEmail.FirebaseUID = &uid
		if err := s.repo.Update(ctx, byEmail); err != nil {
			return nil, fmt.Errorf("link firebase uid: %w", err)
		}
		s.logger.Info("Linked existing user to Firebase account", zap.String("userID", byEmail.ID.String()))
		s.invalidate(ctx)
		return byEmail, nil
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	uid := token.UID
	newUser := &User{
		FirebaseUID: &uid,
		Email:       email,
	}
	if name, ok := token.Claims["name"].(string); ok {
		newUser.FullName = strings.TrimSpace(name)
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		newUser.ProfileImageURL = picture
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}
	s.logger.Info("Created user at first sign-in", zap.String("userID", newUser.ID.String()))
	s.invalidate(ctx)
	return newUser, nil
}

// GetUserByID returns a single user.
func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Error finding user by ID", zap.Error(err), zap.String("userID", id.String()))
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies the profile form to the user and saves it.
func (s *ServiceImplementation) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.DisplayName = strings.TrimSpace(req.DisplayName)
	u.Gender = strings.TrimSpace(req.Gender)
	u.CountryOfOrigin = strings.TrimSpace(req.CountryOfOrigin)
	if !u.IsComplete() {
		return nil, common.NewValidationAPIError(map[string]string{
			"profile": "Display name, gender and country of origin are required.",
		})
	}
	u.Location = strings.TrimSpace(req.Location)
	u.Bio = sanitize.PlainText(req.Bio)
	u.Interests = common.NormalizeTags(req.Interests)
	u.IsMentor = req.IsMentor
	if req.IsMentor {
		u.MentorSpecialties = common.NormalizeTags(req.MentorSpecialties)
	} else {
		u.MentorSpecialties = []string{}
	}
	if req.ProfileImageURL != "" {
		u.ProfileImageURL = strings.TrimSpace(req.ProfileImageURL)
	}

	u.ConversionDate = nil
	if req.ConversionDate != "" {
		d, err := time.Parse("2006-01-02", req.ConversionDate)
		if err != nil {
			return nil, common.NewValidationAPIError(map[string]string{
				"ConversionDate": "The conversion_date field must be a date in the format 2006-01-02.",
			})
		}
		u.ConversionDate = &d
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err), zap.String("userID", id.String()))
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("Profile updated", zap.String("userID", id.String()), zap.Bool("complete", u.IsComplete()))
	return u, nil
}

// SetProfileImage stores the URL of a freshly uploaded profile image.
func (s *ServiceImplementation) SetProfileImage(ctx context.Context, id uuid.UUID, url string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.ProfileImageURL = url
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return u, nil
}

// FindUsers returns a user population, cached per query.
func (s *ServiceImplementation) FindUsers(ctx context.Context, q Query) ([]User, error) {
	return cache.GetOrLoad(ctx, s.cache, q.CacheKey(), func(ctx context.Context) ([]User, error) {
		return s.repo.Filter(ctx, q)
	})
}

// invalidate drops every cached population; the next read reloads from the store.
func (s *ServiceImplementation) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, CacheKeyPrefix)
}
