package main

import (
	"coolschool-backend/internal/api"
	"coolschool-backend/internal/config"
	"coolschool-backend/internal/logger"
	"coolschool-backend/internal/models"
	"coolschool-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found")
	}

	// Initialize configuration and logging
	cfg := config.New()
	logger.Init(cfg.LogLevel)

	// News can run memory-only (seeded articles) or mirrored to disk.
	var newsPersister store.Persister[models.News]
	if cfg.NewsStorage == "file" {
		newsPersister = store.NewFilePersister[models.News](cfg.NewsDataFile())
	} else {
		newsPersister = store.NewMemoryPersister[models.News]()
	}

	newsStore, err := store.NewNewsStore(newsPersister)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load news data")
	}

	contactStore, err := store.NewContactStore(store.NewFilePersister[models.Contact](cfg.ContactDataFile()))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load contact data")
	}

	recruitStore, err := store.NewRecruitStore(store.NewFilePersister[models.Recruit](cfg.RecruitDataFile()))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load recruit data")
	}

	// Initialize Gin router
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(router, newsStore, contactStore, recruitStore, cfg)

	logger.Log.WithField("port", cfg.Port).Info("Server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Fatal("Failed to start server")
	}
}
