// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
)

// GetBearerToken extracts the token from an "Authorization: Bearer <token>" header.
// Returns an empty string when the header is missing or malformed.
func GetBearerToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader(AuthorizationHeader))
	if authHeader == "" {
		return ""
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}
