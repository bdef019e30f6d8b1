// File: internal/middleware/session.go
package middleware

import (
	"context"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionResolver fetches the current user for a bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, bearerToken string) gate.Session
}

// Session resolves the caller on every request. It never rejects a request:
// a missing or unusable token just leaves the request anonymous.
func Session(resolver SessionResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := resolver.Resolve(c.Request.Context(), common.GetBearerToken(c))
		if s.Kind == gate.SessionFetchError {
			logger.Debug("Session could not be resolved", zap.Error(s.Err), zap.String("request_id", c.GetString(RequestIDContextKey)))
		}
		gate.SetSession(c, s)
		c.Next()
	}
}

// RequireUser answers 401 unless the session resolved to a user.
func RequireUser(c *gin.Context) {
	if user.Current(c) == nil {
		details := "Sign in to continue."
		if gate.SessionFrom(c).Kind == gate.SessionFetchError {
			details = "Your session could not be verified. Sign in again."
		}
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails(details))
		return
	}
	c.Next()
}

// ProfileGate runs the access gate for screen. A redirect answers 409 PROFILE_INCOMPLETE
// and the screen's handler never runs.
func ProfileGate(g *gate.Gate, screen gate.Screen) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := g.Check(c.Request.Context(), screen, gate.SessionFrom(c))
		c.Set(gateDecisionContextKey, d)
		if !d.Allowed() {
			common.RespondWithError(c, common.ErrProfileIncomplete.WithDetails(gin.H{
				"redirect": d.Target,
				"screen":   screen,
			}))
			return
		}
		c.Next()
	}
}
