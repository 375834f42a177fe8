package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/session"
)

type Handler struct {
	sessions *session.Store
}

func NewHandler(sessions *session.Store) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.sessions.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, session.ErrLoginSuperseded) {
			c.JSON(http.StatusConflict, handler.NewErrorResponse("login superseded"))
			return
		}
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(resp))
}

// Logout clears the session unconditionally. Logging out while already
// logged out succeeds with the same empty result.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse("logged out successfully"))
}

// Session returns the current session snapshot, including the loading flag
// while a login is in flight.
func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.sessions.Snapshot()))
}
