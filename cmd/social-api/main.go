// Package main is the entry point for the social-graph service.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/internal/config"
	"github.com/GunarsK-portfolio/social-graph-service/internal/handlers"
	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/repository"
	"github.com/GunarsK-portfolio/social-graph-service/internal/routes"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
	"github.com/GunarsK-portfolio/social-graph-service/internal/service"
	"github.com/GunarsK-portfolio/social-graph-service/pkg/database"
	"github.com/GunarsK-portfolio/social-graph-service/pkg/health"
	"github.com/GunarsK-portfolio/social-graph-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg := config.Load("8081")

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Build the schema registry and association graph; alias typos fail
	// here, not at request time.
	registry := schema.DefaultRegistry()
	graph := schema.DefaultGraph()
	if err := graph.Check(registry); err != nil {
		log.Fatal("Invalid association graph:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, graph)
	postRepo := repository.NewRecords[models.Post](db, graph, schema.EntityPost)
	commentRepo := repository.NewRecords[models.Comment](db, graph, schema.EntityComment)
	profileRepo := repository.NewRecords[models.Profile](db, graph, schema.EntityProfile)

	// Initialize services
	userService := service.NewUserService(userRepo, profileRepo, registry)
	postService := service.NewPostService(postRepo, registry)
	commentService := service.NewCommentService(commentRepo, registry)
	profileService := service.NewProfileService(profileRepo, registry)

	// Initialize handlers
	healthAgg := health.NewAggregator()
	healthAgg.Register("database", health.DatabaseCheck(db))
	socialHandler := handlers.NewSocialHandler(userService, postService, commentService, profileService)
	healthHandler := handlers.NewHealthHandler(healthAgg)

	// Setup router
	router := gin.Default()
	routes.SetupSocialAPI(router, socialHandler, healthHandler, metrics.New("social-api"))

	// Start server
	log.Printf("Starting social service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
