// File: internal/event/handler.go
package event

import (
	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the Events screen.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new event handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("EventHandler")}
}

// RegisterRoutes mounts the event routes behind the screen's gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, screenMW gin.HandlerFunc, requireUserMW gin.HandlerFunc) {
	events := router.Group("/events", screenMW)
	{
		events.GET("", h.listEvents)
		events.POST("", requireUserMW, h.createEvent)
	}
}

// listEvents handles GET /events?type=&period=&sort=
// period defaults to "upcoming"; pass period=all to see everything.
func (h *Handler) listEvents(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), Filter{
		Type:   directory.QueryValue(c, "type", directory.All),
		Period: directory.QueryValue(c, "period", catalog.PeriodUpcoming),
		Sort:   common.SortKey(c.Query("sort")),
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Events retrieved successfully.", result)
}

func (h *Handler) createEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create event: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	created, err := h.service.Create(c.Request.Context(), user.Current(c), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Event created successfully.", created)
}
