package handler

import (
	"errors"
	"net/http"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/hub"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// region --- DTOs ---

// TweetForm is the tweet creation form.
type TweetForm struct {
	Content string `form:"content" json:"content" example:"hello"`
}

// TimelineResponse defines the structure for a page of the home timeline.
type TimelineResponse struct {
	Data     []TweetResponse      `json:"data"`
	Meta     store.PaginationMeta `json:"meta"`
	Scope    string               `json:"scope" example:"all"`
	Messages []auth.Message       `json:"messages"`
}

// TweetDetailResponse wraps a single tweet.
type TweetDetailResponse struct {
	Tweet    TweetResponse  `json:"tweet"`
	Messages []auth.Message `json:"messages"`
}

// LikeResponse is the like state of a tweet after like or unlike.
type LikeResponse struct {
	TweetID uint  `json:"tweet_id" example:"1"`
	Liked   bool  `json:"liked" example:"true"`
	Count   int64 `json:"count" example:"1"`
}

// LikeEventPayload is pushed to an author whose tweet was liked.
type LikeEventPayload struct {
	TweetID uint         `json:"tweet_id"`
	User    UserResponse `json:"user"`
	Count   int64        `json:"count"`
}

// endregion

const scopeFollowing = "following"

// GetTimeline godoc
// @Summary      Home timeline
// @Description  Lists tweets newest first. scope=following keeps the caller's own tweets and those of users they follow.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        scope   query     string  false  "all or following" default(all)
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200     {object}  TimelineResponse
// @Router       / [get]
func (h *Handler) GetTimeline(c *gin.Context) {
	page, limit := parsePagination(c)

	scope, scopeName := store.ScopeAll, "all"
	if c.Query("scope") == scopeFollowing {
		scope, scopeName = store.ScopeFollowing, scopeFollowing
	}

	result, err := h.tweets.Timeline(c.Request.Context(), auth.Username(c), scope, page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, TimelineResponse{
		Data:     toTweetResponses(result.Data),
		Meta:     result.Meta,
		Scope:    scopeName,
		Messages: h.messages(c),
	})
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Description  Posts up to 140 characters and redirects home. Invalid content is returned as field errors with status 200.
// @Tags         tweets
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        content  formData  string  true  "Tweet text"
// @Success      302
// @Success      200  {object}  FormErrorResponse
// @Router       /tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	var form TweetForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tweet, err := h.tweets.Create(c.Request.Context(), auth.Username(c), form.Content)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			h.formError(c, verr, map[string]string{"content": form.Content})
			return
		}
		h.fail(c, err)
		return
	}

	h.metrics.TweetsPosted.Inc()
	logging.FromContext(c, h.log).WithField("tweet_id", tweet.ID).Info("tweet posted")
	c.Redirect(http.StatusFound, HomePath)
}

// GetTweet godoc
// @Summary      Get a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tweet ID"
// @Success      200  {object}  TweetDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [get]
func (h *Handler) GetTweet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.fail(c, store.ErrNotFound)
		return
	}

	view, err := h.tweets.Get(c.Request.Context(), id, auth.Username(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, TweetDetailResponse{Tweet: toTweetResponse(*view), Messages: h.messages(c)})
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Deletes one of the caller's tweets. Tweets of other users are reported as missing.
// @Tags         tweets
// @Security     BearerAuth
// @Param        id   path  int  true  "Tweet ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	if h.deleteTweet(c) {
		c.Status(http.StatusNoContent)
	}
}

// DeleteTweetForm godoc
// @Summary      Delete a tweet from a form
// @Description  Same as DELETE /tweets/{id} but redirects home with a flash message.
// @Tags         tweets
// @Security     BearerAuth
// @Param        id   path  int  true  "Tweet ID"
// @Success      302
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id}/delete [post]
func (h *Handler) DeleteTweetForm(c *gin.Context) {
	if h.deleteTweet(c) {
		h.flash(c, auth.LevelSuccess, "Tweet deleted.")
		c.Redirect(http.StatusFound, HomePath)
	}
}

func (h *Handler) deleteTweet(c *gin.Context) bool {
	id, ok := parseID(c, "id")
	if !ok {
		h.fail(c, store.ErrNotFound)
		return false
	}

	if err := h.tweets.Delete(c.Request.Context(), auth.Username(c), id); err != nil {
		if errors.Is(err, store.ErrForbidden) {
			logging.FromContext(c, h.log).WithFields(logrus.Fields{
				"tweet_id": id,
				"user":     auth.Username(c),
			}).Warn("delete of foreign tweet refused")
		}
		h.fail(c, err)
		return false
	}

	h.metrics.TweetsDeleted.Inc()
	return true
}

// LikeTweet godoc
// @Summary      Like a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tweet ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id}/like [post]
func (h *Handler) LikeTweet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.fail(c, store.ErrNotFound)
		return
	}

	result, err := h.likes.Like(c.Request.Context(), auth.Username(c), id)
	if err != nil {
		h.metrics.Likes.WithLabelValues("like", outcomeLabel(err)).Inc()
		h.fail(c, err)
		return
	}

	if result.Changed {
		h.metrics.Likes.WithLabelValues("like", "created").Inc()
		if user, ok := auth.CurrentUser(c); ok && user.ID != result.AuthorID {
			h.hub.Publish(result.AuthorID, hub.Event{
				Type: hub.EventLike,
				Payload: LikeEventPayload{
					TweetID: result.TweetID,
					User:    toUserResponse(*user),
					Count:   result.Count,
				},
			})
		}
	} else {
		h.metrics.Likes.WithLabelValues("like", "existing").Inc()
	}

	c.JSON(http.StatusOK, LikeResponse{TweetID: result.TweetID, Liked: result.Liked, Count: result.Count})
}

// UnlikeTweet godoc
// @Summary      Unlike a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tweet ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tweets/{id}/unlike [post]
func (h *Handler) UnlikeTweet(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.fail(c, store.ErrNotFound)
		return
	}

	result, err := h.likes.Unlike(c.Request.Context(), auth.Username(c), id)
	if err != nil {
		h.metrics.Likes.WithLabelValues("unlike", outcomeLabel(err)).Inc()
		h.fail(c, err)
		return
	}

	outcome := "missing"
	if result.Changed {
		outcome = "removed"
	}
	h.metrics.Likes.WithLabelValues("unlike", outcome).Inc()

	c.JSON(http.StatusOK, LikeResponse{TweetID: result.TweetID, Liked: result.Liked, Count: result.Count})
}
