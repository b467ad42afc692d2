package main

import (
	"context"
	"net/http"
	"os"

	"github.com/nirvaankohli/invasisee/internal/api"
	"github.com/nirvaankohli/invasisee/internal/config"
	"github.com/nirvaankohli/invasisee/internal/database"
	"github.com/nirvaankohli/invasisee/internal/handler"
	"github.com/nirvaankohli/invasisee/internal/logger"
	"github.com/nirvaankohli/invasisee/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL and run migrations
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Wire handlers with their services
	if err := handler.Configure(cfg); err != nil {
		logger.Error("Could not configure services: %v", err)
		os.Exit(1)
	}

	// Initialize routes
	router := api.SetupRouter(cfg)

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
