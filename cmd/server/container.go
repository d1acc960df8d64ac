package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/config"
	"tweetline/backend/internal/database"
	"tweetline/backend/internal/handler"
	"tweetline/backend/internal/hub"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/monitoring"
	"tweetline/backend/internal/store"
	"tweetline/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

func ProvideConfig() (*config.Config, error) {
	return config.Load(".")
}

func ProvideLogger(cfg *config.Config) *logrus.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
}

func ProvideDatabase(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	return database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, log)
}

func ProvideUserRepository(db *gorm.DB) *store.UserRepository {
	return store.NewUserRepository(db, 0)
}

func ProvideSessions(cfg *config.Config) *auth.Sessions {
	return auth.NewSessions(cfg.SessionSecret, cfg.SessionName)
}

func ProvideTokens(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)
}

func ProvideAuthenticator(sessions *auth.Sessions, tokens *jwt.Manager, users *store.UserRepository, log *logrus.Logger) *auth.Authenticator {
	return auth.NewAuthenticator(sessions, tokens, users, log)
}

// HandlerParams collects the handler's dependencies from the container.
type HandlerParams struct {
	dig.In

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

func ProvideHandler(p HandlerParams) *handler.Handler {
	return handler.New(handler.Deps{
		Users:    p.Users,
		Follows:  p.Follows,
		Tweets:   p.Tweets,
		Likes:    p.Likes,
		Profiles: p.Profiles,
		Sessions: p.Sessions,
		Tokens:   p.Tokens,
		Hub:      p.Hub,
		Metrics:  p.Metrics,
		Log:      p.Log,
		Config:   p.Config,
	})
}

func ProvideRouter(cfg *config.Config, h *handler.Handler, authn *auth.Authenticator, metrics *monitoring.Metrics, log *logrus.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return handler.NewRouter(h, authn, metrics, log)
}

// ProvideServer builds the HTTP server. Shutdown closes the event hub so
// open /events streams return instead of holding the server open.
func ProvideServer(cfg *config.Config, router *gin.Engine, events *hub.Hub) *http.Server {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(events.Close)
	return server
}

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name string
		fn   interface{}
	}{
		{"config", ProvideConfig},
		{"logger", ProvideLogger},
		{"database", ProvideDatabase},
		{"user repository", ProvideUserRepository},
		{"follow repository", store.NewFollowRepository},
		{"tweet repository", store.NewTweetRepository},
		{"like repository", store.NewLikeRepository},
		{"profile service", store.NewProfileService},
		{"sessions", ProvideSessions},
		{"tokens", ProvideTokens},
		{"authenticator", ProvideAuthenticator},
		{"hub", hub.NewHub},
		{"metrics", monitoring.New},
		{"handler", ProvideHandler},
		{"router", ProvideRouter},
		{"server", ProvideServer},
	}
	for _, p := range providers {
		if err := container.Provide(p.fn); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}
