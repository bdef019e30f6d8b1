// File: internal/resource/handler.go
package resource

import (
	"strconv"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the Resources screen.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new resource handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("ResourceHandler")}
}

// RegisterRoutes mounts the resource routes behind the screen's gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, screenMW gin.HandlerFunc, requireUserMW gin.HandlerFunc) {
	resources := router.Group("/resources", screenMW)
	{
		resources.GET("", h.listResources)
		resources.GET("/search", h.searchResources)
		resources.POST("", requireUserMW, h.createResource)
	}
}

// listResources handles GET /resources?category=&type=&search=&sort=
func (h *Handler) listResources(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), Filter{
		Category: directory.QueryValue(c, "category", directory.All),
		Type:     directory.QueryValue(c, "type", directory.All),
		Search:   directory.QueryValue(c, "search", ""),
		Sort:     common.SortKey(c.Query("sort")),
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Resources retrieved successfully.", result)
}

// searchResources handles GET /resources/search?q=&category=&type=&limit=
func (h *Handler) searchResources(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Query parameter 'limit' must be a positive integer."))
			return
		}
		limit = n
	}
	results, err := h.service.Search(c.Request.Context(), SearchQuery{
		Text:     c.Query("q"),
		Category: directory.QueryValue(c, "category", directory.All),
		Type:     directory.QueryValue(c, "type", directory.All),
		Limit:    limit,
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Resources found.", results)
}

func (h *Handler) createResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create resource: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	created, err := h.service.Create(c.Request.Context(), user.Current(c), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Resource shared successfully.", created)
}
