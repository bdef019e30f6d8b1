// File: internal/auth/resolver.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/user"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// ErrSessionsDisabled is reported when a bearer token arrives but no verifier is configured.
var ErrSessionsDisabled = errors.New("session verification is not configured")

// TokenVerifier verifies a bearer ID token.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// UserProvisioner maps verified claims onto a local user, creating it at first sign-in.
type UserProvisioner interface {
	GetOrCreateFromFirebaseToken(ctx context.Context, token *firebaseauth.Token) (*user.User, error)
}

// Resolver turns a request's bearer token into a gate.Session.
type Resolver struct {
	verifier TokenVerifier
	users    UserProvisioner
	logger   *zap.Logger
}

// NewResolver creates a Resolver. verifier may be nil when sessions are not configured.
func NewResolver(verifier TokenVerifier, users UserProvisioner, logger *zap.Logger) *Resolver {
	return &Resolver{verifier: verifier, users: users, logger: logger.Named("SessionResolver")}
}

// Resolve fetches the current user. It never fails: problems become a FetchError session.
func (r *Resolver) Resolve(ctx context.Context, bearerToken string) gate.Session {
	if bearerToken == "" {
		return gate.Anonymous()
	}
	if r.verifier == nil {
		return gate.FetchError(ErrSessionsDisabled)
	}

	token, err := r.verifier.VerifyIDToken(ctx, bearerToken)
	if err != nil {
		return gate.FetchError(err)
	}
	u, err := r.users.GetOrCreateFromFirebaseToken(ctx, token)
	if err != nil {
		r.logger.Warn("Verified token could not be mapped to a user", zap.String("uid", token.UID), zap.Error(err))
		return gate.FetchError(fmt.Errorf("load current user: %w", err))
	}
	return gate.Authenticated(u)
}
