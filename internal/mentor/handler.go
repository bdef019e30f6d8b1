// File: internal/mentor/handler.go
package mentor

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/directory"
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the Mentors screen.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new mentor handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("MentorHandler")}
}

// RegisterRoutes mounts the mentor routes behind the screen's gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, screenMW gin.HandlerFunc, requireUserMW gin.HandlerFunc) {
	mentors := router.Group("/mentors", screenMW)
	{
		mentors.GET("", h.listMentors)
		mentors.POST("/:id/requests", requireUserMW, h.requestMentor)
	}
}

// listMentors handles GET /mentors?specialty=&location=&sort=
func (h *Handler) listMentors(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), Filter{
		Specialty: directory.TagQueryValue(c, "specialty"),
		Location:  directory.QueryValue(c, "location", ""),
		Sort:      common.SortKey(c.Query("sort")),
	})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	now := time.Now()
	common.RespondOK(c, "Mentors retrieved successfully.", directory.Map(result, func(u user.User) user.DirectoryCard {
		return user.ToDirectoryCard(u, now)
	}))
}

// requestMentor handles POST /mentors/:id/requests
func (h *Handler) requestMentor(c *gin.Context) {
	mentorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid mentor ID format."))
		return
	}
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Request mentor: invalid request body", zap.Error(err))
		common.RespondWithError(c, common.NewBindingAPIError(err))
		return
	}
	created, err := h.service.RequestMentor(c.Request.Context(), user.Current(c), mentorID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Mentor request sent successfully.", ToRequestResponse(*created))
}
