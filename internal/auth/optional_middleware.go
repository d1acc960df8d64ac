package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"tweetline/backend/internal/models"
	"tweetline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoginPath is where anonymous browser requests are sent.
const LoginPath = "/accounts/login"

// UserFinder loads a user by primary key.
type UserFinder interface {
	ByID(ctx context.Context, id uint) (*models.User, error)
}

// Authenticator resolves the caller from a Bearer token or the session cookie.
type Authenticator struct {
	sessions *Sessions
	tokens   *jwt.Manager
	users    UserFinder
	log      *logrus.Logger
}

func NewAuthenticator(sessions *Sessions, tokens *jwt.Manager, users UserFinder, log *logrus.Logger) *Authenticator {
	return &Authenticator{sessions: sessions, tokens: tokens, users: users, log: log}
}

// LoadUser inspects for a token or session and sets the user if present and
// valid, but does not fail if both are missing or invalid.
func (a *Authenticator) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := a.resolve(c); ok {
			user, err := a.users.ByID(c.Request.Context(), userID)
			if err == nil {
				SetUser(c, user)
			} else {
				a.log.WithError(err).WithField("user_id", userID).Debug("credential for unknown user")
			}
		}
		c.Next()
	}
}

func (a *Authenticator) resolve(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			userID, err := a.tokens.ParseToken(parts[1])
			if err == nil {
				return userID, true
			}
			a.log.WithError(err).Debug("rejected bearer token")
		}
		return 0, false
	}
	return a.sessions.UserID(c)
}

// RequireLogin must run after LoadUser. Browser requests are redirected to
// the login page; API and token requests get a 401.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}
		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.GetHeader("Authorization") != "" {
		return true
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
