package auth

import (
	"tweetline/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// SetUser stores the authenticated user on the request context.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// Username returns the authenticated username or "" for anonymous callers.
func Username(c *gin.Context) string {
	if user, ok := CurrentUser(c); ok {
		return user.Username
	}
	return ""
}
