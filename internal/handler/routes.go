package handler

import (
	"tweetline/backend/internal/auth"
	"tweetline/backend/internal/logging"
	"tweetline/backend/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route and the shared middleware.
func NewRouter(h *Handler, authn *auth.Authenticator, metrics *monitoring.Metrics, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(log), metrics.Middleware(), authn.LoadUser())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", h.Ping)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	accounts := router.Group("/accounts")
	{
		accounts.GET("/signup", h.SignupPage)
		accounts.POST("/signup", h.Signup)
		accounts.GET("/login", h.LoginPage)
		accounts.POST("/login", h.Login)
		accounts.POST("/logout", h.Logout)
	}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/token", h.IssueToken)
	}

	// Everything below requires a logged-in caller.
	private := router.Group("/")
	private.Use(auth.RequireLogin())
	{
		private.GET("/", h.GetTimeline)
		private.GET("/events", h.StreamEvents)

		users := private.Group("/users/:username")
		{
			users.GET("/profile", h.GetProfile)
			users.GET("/following", h.GetFollowing)
			users.GET("/followers", h.GetFollowers)
			users.POST("/follow", h.FollowUser)
			users.POST("/unfollow", h.UnfollowUser)
		}

		tweets := private.Group("/tweets")
		{
			tweets.POST("", h.CreateTweet)
			tweets.GET("/:id", h.GetTweet)
			tweets.DELETE("/:id", h.DeleteTweet)
			tweets.POST("/:id/delete", h.DeleteTweetForm)
			tweets.POST("/:id/like", h.LikeTweet)
			tweets.POST("/:id/unlike", h.UnlikeTweet)
		}

		admin := private.Group("/admin")
		admin.Use(auth.AdminMiddleware())
		{
			admin.DELETE("/users/:username", h.DeleteUser)
		}
	}

	return router
}
