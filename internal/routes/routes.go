// Package routes defines the HTTP routes of both REST surfaces.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GunarsK-portfolio/social-graph-service/internal/handlers"
	"github.com/GunarsK-portfolio/social-graph-service/internal/middleware"
	"github.com/GunarsK-portfolio/social-graph-service/pkg/metrics"
)

// SetupUsersAPI configures the plain user CRUD surface.
func SetupUsersAPI(router *gin.Engine, userHandler *handlers.UserHandler, healthHandler *handlers.HealthHandler, m *metrics.Metrics) {
	router.Use(middleware.Metrics(m))

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/user", userHandler.Create)
	router.GET("/user", userHandler.List)
	router.GET("/user/:id", userHandler.Get)
	router.PUT("/user/:id", userHandler.Update)
	router.DELETE("/user/:id", userHandler.Delete)
}

// SetupSocialAPI configures the social-graph surface.
func SetupSocialAPI(router *gin.Engine, socialHandler *handlers.SocialHandler, healthHandler *handlers.HealthHandler, m *metrics.Metrics) {
	router.Use(middleware.Metrics(m))

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/user", socialHandler.CreateUser)
	router.POST("/post", socialHandler.CreatePost)
	router.POST("/comment", socialHandler.CreateComment)

	router.GET("/user", socialHandler.GetUser)
	router.GET("/post", socialHandler.GetPost)
	router.GET("/comment", socialHandler.GetComment)
	router.GET("/profile", socialHandler.GetProfile)

	router.GET("/all-user", socialHandler.AllUsers)
	router.GET("/all-posts", socialHandler.AllPosts)
	router.GET("/all-comments", socialHandler.AllComments)
	router.GET("/all-profiles", socialHandler.AllProfiles)
}
