// File: internal/catalog/handler.go
package catalog

import (
	"revert_connect_backend/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler serves the filter-bar and form option catalogs.
type Handler struct {
	service Service
}

// NewHandler creates a new catalog handler.
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up GET /catalog. The catalog is public.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", h.getCatalog)
}

func (h *Handler) getCatalog(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	common.RespondOK(c, "Catalog retrieved successfully.", h.service.Get())
}
