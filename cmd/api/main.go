package main

import (
	"log"
	"time"

	"github.com/ramabhadrarao/opencart-api/internal/config"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/database"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		AppName:     cfg.ProjectName,
		Concurrency: 256 * 1024,
		BodyLimit:   10 * 1024 * 1024, // 10MB
		ReadTimeout: 5 * time.Second,
		// Long enough for slow admin analytics queries
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes (includes the request tracker)
	routes.SetupRoutes(app, db, cfg)

	log.Printf("🚀 %s is running on port %s", cfg.ProjectName, cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
