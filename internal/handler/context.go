package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
)

// CurrentUser returns the user placed in context by the route guard.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(middleware.ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's ID, or uuid.Nil.
func CurrentUserID(c *gin.Context) uuid.UUID {
	user, ok := CurrentUser(c)
	if !ok {
		return uuid.Nil
	}
	return user.ID
}
