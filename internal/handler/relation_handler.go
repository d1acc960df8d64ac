package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/config"
	"tweetline/backend/internal/hub"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/models"
	"tweetline/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FollowEventPayload is pushed to a user who gained a follower.
type FollowEventPayload struct {
	Follower UserResponse `json:"follower"`
}

// FollowUser godoc
// @Summary      Follow a user
// @Description  Creates the follow edge and redirects to the target's profile with a flash message.
// @Tags         relations
// @Security     BearerAuth
// @Param        username  path  string  true  "Username to follow"
// @Success      302
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	actor := auth.Username(c)
	target := c.Param("username")

	result, err := h.follows.Follow(c.Request.Context(), actor, target)
	switch {
	case errors.Is(err, store.ErrSelfFollow):
		h.metrics.Follows.WithLabelValues("follow", "self").Inc()
		h.flash(c, auth.LevelWarning, "You cannot follow yourself.")
	case err != nil:
		h.metrics.Follows.WithLabelValues("follow", outcomeLabel(err)).Inc()
		h.fail(c, err)
		return
	case result.Created:
		h.metrics.Follows.WithLabelValues("follow", "created").Inc()
		h.flash(c, auth.LevelSuccess, fmt.Sprintf("You are now following %s.", result.Followee.Username))
		h.hub.Publish(result.Followee.ID, hub.Event{
			Type:    hub.EventFollow,
			Payload: FollowEventPayload{Follower: toUserResponse(result.Follower)},
		})
		logging.FromContext(c, h.log).WithFields(logrus.Fields{
			"follower": result.Follower.Username,
			"followee": result.Followee.Username,
		}).Info("follow created")
	default:
		h.metrics.Follows.WithLabelValues("follow", "existing").Inc()
		h.flash(c, auth.LevelWarning, fmt.Sprintf("You are already following %s.", result.Followee.Username))
	}

	c.Redirect(http.StatusFound, profilePath(result.Followee))
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Description  Removes the follow edge and redirects to the target's profile with a flash message.
// @Tags         relations
// @Security     BearerAuth
// @Param        username  path  string  true  "Username to unfollow"
// @Success      302
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{username}/unfollow [post]
func (h *Handler) UnfollowUser(c *gin.Context) {
	actor := auth.Username(c)
	target := c.Param("username")

	result, err := h.follows.Unfollow(c.Request.Context(), actor, target)
	switch {
	case errors.Is(err, store.ErrSelfUnfollow):
		h.metrics.Follows.WithLabelValues("unfollow", "self").Inc()
		h.flash(c, auth.LevelWarning, "You cannot unfollow yourself.")
	case errors.Is(err, store.ErrNotFollowing):
		h.metrics.Follows.WithLabelValues("unfollow", "missing").Inc()
		if h.unfollowMissing != config.UnfollowMissingSilent {
			h.flash(c, auth.LevelWarning, fmt.Sprintf("You are not following %s.", result.Followee.Username))
		}
	case err != nil:
		h.metrics.Follows.WithLabelValues("unfollow", outcomeLabel(err)).Inc()
		h.fail(c, err)
		return
	default:
		h.metrics.Follows.WithLabelValues("unfollow", "removed").Inc()
		h.flash(c, auth.LevelSuccess, fmt.Sprintf("You have unfollowed %s.", result.Followee.Username))
	}

	c.Redirect(http.StatusFound, profilePath(result.Followee))
}

func (h *Handler) listUsers(c *gin.Context, list func(context.Context, string) ([]models.User, error)) {
	username := c.Param("username")
	owner, err := h.users.ByUsername(c.Request.Context(), username)
	if err != nil {
		h.fail(c, err)
		return
	}

	users, err := list(c.Request.Context(), username)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UserListResponse{
		User:     toUserResponse(*owner),
		Users:    toUserResponses(users),
		Count:    len(users),
		Messages: h.messages(c),
	})
}

func profilePath(u models.User) string {
	return "/users/" + u.Slug + "/profile"
}

func outcomeLabel(err error) string {
	if errors.Is(err, store.ErrNotFound) {
		return "not_found"
	}
	return "error"
}
