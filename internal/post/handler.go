// File: internal/post/handler.go
package post

import (
	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the Community screen.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new post handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("PostHandler")}
}

// RegisterRoutes mounts the post routes behind the screen's gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, screenMW gin.HandlerFunc, requireUserMW gin.HandlerFunc) {
	posts := router.Group("/posts", screenMW)
	{
		posts.GET("", h.listPosts)
		posts.POST("", requireUserMW, h.createPost)
	}
}

// listPosts handles GET /posts?type=&tag=&sort=
func (h *Handler) listPosts(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), Filter{
		Type: directory.QueryValue(c, "type", directory.All),
		Tag:  directory.TagQueryValue(c, "tag"),
		Sort: common.SortKey(c.Query("sort")),
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Posts retrieved successfully.", directory.Map(result, ToPostResponse))
}

func (h *Handler) createPost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create post: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	created, err := h.service.Create(c.Request.Context(), user.Current(c), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Post created successfully.", ToPostResponse(*created))
}
