package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"lumina/backend/config"
	"lumina/backend/core"
	"lumina/backend/middleware"
	"lumina/backend/routes"
	"lumina/backend/store"
	"lumina/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Open the persistent store
	kv, err := store.Open(cfg, logger)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	// Application state; pick up a session left by the previous run
	state := core.NewState(kv, logger)
	if user, ok := state.RestoreSession(context.Background()); ok {
		logger.Printf("resuming session for %s", user.RegNo)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, state, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
