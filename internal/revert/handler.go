// File: internal/revert/handler.go
package revert

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the Meet Reverts screen.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new revert handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("RevertHandler")}
}

// RegisterRoutes mounts the revert routes behind the screen's gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, screenMW gin.HandlerFunc, requireUserMW gin.HandlerFunc) {
	reverts := router.Group("/reverts", screenMW)
	{
		reverts.GET("", h.listReverts)
		reverts.POST("/:id/connect", requireUserMW, h.connect)
	}
}

// listReverts handles GET /reverts?location=&conversion_year=&interest=&sort=
func (h *Handler) listReverts(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), user.Current(c), Filter{
		Location:       directory.QueryValue(c, "location", ""),
		ConversionYear: directory.QueryValue(c, "conversion_year", directory.All),
		Interest:       directory.TagQueryValue(c, "interest"),
		Sort:           common.SortKey(c.Query("sort")),
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	now := time.Now()
	common.RespondOK(c, "Reverts retrieved successfully.", Result[user.DirectoryCard]{
		Result: directory.Map(result.Result, func(u user.User) user.DirectoryCard {
			return user.ToDirectoryCard(u, now)
		}),
		GenderRequired: result.GenderRequired,
	})
}

// connect handles POST /reverts/:id/connect
func (h *Handler) connect(c *gin.Context) {
	toID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid user ID format."))
		return
	}
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Connect: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	resp, err := h.service.Connect(c.Request.Context(), user.Current(c), toID, req.Message)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondAccepted(c, "Connection request sent.", resp)
}
