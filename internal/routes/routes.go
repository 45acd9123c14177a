// Package routes wires handlers onto gin routers for both servers.
package routes

import (
	"github.com/azimmemon2002/socialhub/internal/account"
	"github.com/azimmemon2002/socialhub/internal/authclient"
	"github.com/azimmemon2002/socialhub/internal/friend"
	"github.com/azimmemon2002/socialhub/internal/health"
	"github.com/azimmemon2002/socialhub/internal/middleware"
	"github.com/azimmemon2002/socialhub/internal/post"
	"github.com/azimmemon2002/socialhub/internal/profile"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/gin-gonic/gin"
)

// SetupAuth configures the auth server's routes.
func SetupAuth(router *gin.Engine, accounts *account.Handler, healthHandler *health.Handler) {
	router.GET("/health", healthHandler.Check)

	auth := router.Group("/auth")
	{
		auth.POST("/register", accounts.Register)
		auth.POST("/login", accounts.Login)
		auth.POST("/validate", accounts.Validate)
	}
}

// UserHandlers bundles the user server's handlers for route setup.
type UserHandlers struct {
	Auth     *authclient.Handler
	Profiles *profile.Handler
	Posts    *post.Handler
	Friends  *friend.Handler
	Health   *health.Handler
}

// SetupUser configures the user server's routes. Every route outside the
// auth proxy and health check requires a verified bearer token.
func SetupUser(router *gin.Engine, h UserHandlers, tokenService token.Service) {
	router.GET("/health", h.Health.Check)

	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	authenticated := router.Group("/")
	authenticated.Use(middleware.RequireAuth(tokenService))

	profiles := authenticated.Group("/profile")
	{
		profiles.GET("/me", h.Profiles.GetMe)
		profiles.PUT("/me", h.Profiles.UpdateMe)
		profiles.GET("/view/:id", h.Profiles.View)
		profiles.GET("/:id", middleware.RequireRole("ROLE_ADMIN"), h.Profiles.GetByID)
	}

	posts := authenticated.Group("/posts")
	{
		posts.POST("/create", h.Posts.Create)
		posts.GET("", h.Posts.List)
		posts.GET("/user/:username", h.Posts.ListByUser)
		posts.POST("/:id/like", h.Posts.Like)
		posts.POST("/:id/comment", h.Posts.Comment)
		posts.GET("/:id/comments", h.Posts.Comments)
		posts.GET("/:id/likes", h.Posts.Likes)
		posts.DELETE("/:id", h.Posts.Delete)
	}

	friends := authenticated.Group("/friends")
	{
		friends.POST("/request", h.Friends.SendRequest)
		friends.POST("/action", h.Friends.Action)
		friends.GET("/list", h.Friends.List)
		friends.GET("/requests/received", h.Friends.Received)
		friends.GET("/requests/sent", h.Friends.Sent)
		friends.DELETE("/remove/:friendId", h.Friends.Remove)
	}
}
