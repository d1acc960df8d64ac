package handler

import (
	"net/http"

	"tweetline/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ProfileResponse defines the structure for a user's profile page.
type ProfileResponse struct {
	User          UserResponse    `json:"user"`
	Tweets        []TweetResponse `json:"tweets"`
	FollowCount   int64           `json:"follow_count" example:"2"`
	FollowerCount int64           `json:"follower_count" example:"5"`
	Connected     bool            `json:"connected"`
	IsOwner       bool            `json:"is_owner"`
	Messages      []auth.Message  `json:"messages"`
}

// UserListResponse defines the structure for following and follower lists.
type UserListResponse struct {
	User     UserResponse   `json:"user"`
	Users    []UserResponse `json:"users"`
	Count    int            `json:"count" example:"2"`
	Messages []auth.Message `json:"messages"`
}

// endregion

// GetProfile godoc
// @Summary      Get a user's profile
// @Description  Returns the owner's tweets newest first, follow counts and whether the caller follows the owner.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Profile slug"
// @Success      200       {object}  ProfileResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{username}/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Profile(c.Request.Context(), c.Param("username"), auth.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		User:          toUserResponse(profile.Owner),
		Tweets:        toTweetResponses(profile.Tweets),
		FollowCount:   profile.FollowCount,
		FollowerCount: profile.FollowerCount,
		Connected:     profile.IsFollowing,
		IsOwner:       profile.IsOwner,
		Messages:      h.messages(c),
	})
}

// GetFollowing godoc
// @Summary      List the users someone follows
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  UserListResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{username}/following [get]
func (h *Handler) GetFollowing(c *gin.Context) {
	h.listUsers(c, h.follows.ListFollowing)
}

// GetFollowers godoc
// @Summary      List someone's followers
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  UserListResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{username}/followers [get]
func (h *Handler) GetFollowers(c *gin.Context) {
	h.listUsers(c, h.follows.ListFollowers)
}
