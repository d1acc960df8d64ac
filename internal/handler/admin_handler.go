package handler

import (
	"net/http"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DeleteUser godoc
// @Summary      Delete an account (Admin only)
// @Description  Deletes a user together with their tweets, likes and follow edges.
// @Tags         admin
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/users/{username} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.users.Delete(c.Request.Context(), username); err != nil {
		h.fail(c, err)
		return
	}

	logging.FromContext(c, h.log).WithFields(logrus.Fields{
		"admin":   auth.Username(c),
		"deleted": username,
	}).Info("user deleted")
	c.Status(http.StatusNoContent)
}
