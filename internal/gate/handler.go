// File: internal/gate/handler.go
package gate

import (
	"revert_connect_backend/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler exposes the navigation check to the client router.
type Handler struct {
	gate *Gate
}

// NewHandler creates a new gate handler.
func NewHandler(g *Gate) *Handler {
	return &Handler{gate: g}
}

// RegisterRoutes mounts GET /gate.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/gate", h.check)
}

type checkResponse struct {
	Decision
	Session    SessionKind `json:"session"`
	IsComplete bool        `json:"is_complete"`
}

// check answers GET /gate?screen=Events. The client calls it on every route change.
func (h *Handler) check(c *gin.Context) {
	screen, err := ParseScreen(c.Query("screen"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	s := SessionFrom(c)
	d := h.gate.Check(c.Request.Context(), screen, s)
	common.RespondOK(c, "", checkResponse{
		Decision:   d,
		Session:    s.Kind,
		IsComplete: s.User != nil && s.User.IsComplete(),
	})
}
