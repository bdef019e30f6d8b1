// File: internal/directory/query.go
package directory

import (
	"revert_connect_backend/internal/common"

	"github.com/gin-gonic/gin"
)

// QueryValue reads a facet from the request, falling back to def when the parameter is absent.
// A parameter that is present but empty is kept as "" (no restriction).
func QueryValue(c *gin.Context, key, def string) string {
	if v, ok := c.GetQuery(key); ok {
		return v
	}
	return def
}

// TagQueryValue reads a tag-like facet and brings it into the stored tag form,
// so "Ramadan Tips" matches the saved "ramadan_tips". All and "" pass through.
func TagQueryValue(c *gin.Context, key string) string {
	v := QueryValue(c, key, All)
	if !Active(v) {
		return v
	}
	return common.NormalizeTag(v)
}
