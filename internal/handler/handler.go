package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/config"
	"tweetline/backend/internal/hub"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/models"
	"tweetline/backend/internal/monitoring"
	"tweetline/backend/internal/store"
	"tweetline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HomePath is where successful form posts land.
const HomePath = "/"

// Deps are the collaborators a Handler needs.
type Deps struct {
	Users    *store.UserRepository
	Follows  *store.FollowRepository
	Tweets   *store.TweetRepository
	Likes    *store.LikeRepository
	Profiles *store.ProfileService
	Sessions *auth.Sessions
	Tokens   *jwt.Manager
	Hub      *hub.Hub
	Metrics  *monitoring.Metrics
	Log      *logrus.Logger
	Config   *config.Config
}

// Handler serves every HTTP endpoint.
type Handler struct {
	users    *store.UserRepository
	follows  *store.FollowRepository
	tweets   *store.TweetRepository
	likes    *store.LikeRepository
	profiles *store.ProfileService
	sessions *auth.Sessions
	tokens   *jwt.Manager
	hub      *hub.Hub
	metrics  *monitoring.Metrics
	log      *logrus.Logger

	unfollowMissing string
}

func New(d Deps) *Handler {
	policy := config.UnfollowMissingWarn
	if d.Config != nil && d.Config.UnfollowMissingPolicy != "" {
		policy = d.Config.UnfollowMissingPolicy
	}
	return &Handler{
		users:           d.Users,
		follows:         d.Follows,
		tweets:          d.Tweets,
		likes:           d.Likes,
		profiles:        d.Profiles,
		sessions:        d.Sessions,
		tokens:          d.Tokens,
		hub:             d.Hub,
		metrics:         d.Metrics,
		log:             d.Log,
		unfollowMissing: policy,
	}
}

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error    string         `json:"error" example:"An error message"`
	Messages []auth.Message `json:"messages,omitempty"`
}

// FormErrorResponse is returned with status 200 when a submitted form is invalid.
type FormErrorResponse struct {
	Errors   map[string][]string `json:"errors"`
	Form     map[string]string   `json:"form"`
	Messages []auth.Message      `json:"messages"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Slug     string `json:"slug" example:"alice"`
}

// TweetResponse is a tweet as seen by the caller.
type TweetResponse struct {
	ID        uint         `json:"id" example:"1"`
	Content   string       `json:"content" example:"hello"`
	CreatedAt time.Time    `json:"created_at"`
	Author    UserResponse `json:"author"`
	LikeCount int64        `json:"like_count" example:"3"`
	Liked     bool         `json:"liked"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Slug: u.Slug}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toTweetResponse(v store.TweetView) TweetResponse {
	return TweetResponse{
		ID:        v.ID,
		Content:   v.Content,
		CreatedAt: v.CreatedAt,
		Author:    toUserResponse(v.User),
		LikeCount: v.LikeCount,
		Liked:     v.Liked,
	}
}

func toTweetResponses(views []store.TweetView) []TweetResponse {
	out := make([]TweetResponse, len(views))
	for i, v := range views {
		out[i] = toTweetResponse(v)
	}
	return out
}

// endregion

// statusFor maps store errors to HTTP status codes.
func statusFor(err error) int {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusOK
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrForbidden):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// notFoundMessage is the user-visible text for a missing resource.
func notFoundMessage(err error) string {
	var nf *store.NotFoundError
	if errors.As(err, &nf) && nf.Resource == "user" {
		return fmt.Sprintf("%s does not exist.", nf.Key)
	}
	return "No tweet found matching the query."
}

// fail writes the error response for err. Unexpected errors are logged and
// hidden from the client.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		_ = c.Error(err)
		logging.FromContext(c, h.log).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
	case http.StatusNotFound:
		msg := notFoundMessage(err)
		c.JSON(status, ErrorResponse{
			Error:    msg,
			Messages: []auth.Message{{Level: auth.LevelWarning, Text: msg}},
		})
	default:
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}

// formError renders an invalid form with its field errors.
func (h *Handler) formError(c *gin.Context, verr *store.ValidationError, form map[string]string) {
	c.JSON(http.StatusOK, FormErrorResponse{
		Errors:   verr.Fields,
		Form:     form,
		Messages: h.messages(c),
	})
}

// flash queues a message for the next page. Failures only get logged.
func (h *Handler) flash(c *gin.Context, level, text string) {
	if err := h.sessions.Flash(c, level, text); err != nil {
		logging.FromContext(c, h.log).WithError(err).Warn("flash not stored")
	}
}

// messages pops the pending flash messages for the page being rendered.
func (h *Handler) messages(c *gin.Context) []auth.Message {
	messages, err := h.sessions.Messages(c)
	if err != nil {
		logging.FromContext(c, h.log).WithError(err).Warn("flash not cleared")
	}
	return messages
}

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
