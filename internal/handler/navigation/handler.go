package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/navigation"
)

type Handler struct {
	registry navigation.Registry
}

func NewHandler(registry navigation.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/navigation", h.List)
}

// List returns exactly the navigation entries visible to the current role.
// Filtering happens here, server-side: entries outside the role's set are
// absent from the payload, not hidden.
func (h *Handler) List(c *gin.Context) {
	role, ok := c.Get(middleware.ContextUserRole)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no session role"))
		return
	}

	items := h.registry.FilterForRole(role.(model.Role))
	c.JSON(http.StatusOK, handler.NewSuccessResponse(items))
}
