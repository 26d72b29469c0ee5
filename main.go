package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"alexweb-api/config"
	"alexweb-api/database"
	"alexweb-api/middleware"
	"alexweb-api/routes"
	"alexweb-api/services"
	"alexweb-api/utils"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// A malformed schema must never serve requests
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	if cfg.SeedOnStart {
		if err := database.SeedData(db); err != nil {
			log.Warnf("Failed to seed database: %v", err)
		}
	}

	// Report validation errors with the client's json field names
	utils.UseJSONFieldNames()

	emailService := services.NewEmailService(cfg)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(routes.SetupCORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(gin.Recovery())

	routes.SetupRoutes(router, db, emailService, log)

	log.Infof("Starting AlexWeb API server on port %s", cfg.Port)
	log.Infof("Health check available at: http://localhost:%s/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
