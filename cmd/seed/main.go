// Command seed writes sample data files for local development so the
// admin screens have something to show without touching the live forms.
package main

import (
	"coolschool-backend/internal/config"
	"coolschool-backend/internal/logger"
	"coolschool-backend/internal/models"
	"coolschool-backend/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found")
	}

	cfg := config.New()
	logger.Init(cfg.LogLevel)

	// Constructing the stores against empty files writes the seed sets.
	if _, err := store.NewNewsStore(store.NewFilePersister[models.News](cfg.NewsDataFile())); err != nil {
		logger.Log.WithError(err).Fatal("Failed to seed news data")
	}

	contacts, err := store.NewContactStore(store.NewFilePersister[models.Contact](cfg.ContactDataFile()))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to seed contact data")
	}

	recruits, err := store.NewRecruitStore(store.NewFilePersister[models.Recruit](cfg.RecruitDataFile()))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to seed recruit data")
	}

	// The recruit store starts empty; add a couple of sample requests.
	samples := []models.CreateRecruitRequest{
		{
			ParentName:     "Lê Thị Hoa",
			ParentPhone:    "0905123456",
			ParentEmail:    "lethihoa@email.com",
			ChildName:      "Lê Minh An",
			ChildBirthdate: "2020-06-01",
			Program:        "program",
			Schedule:       "morning",
		},
		{
			ParentName:     "Phạm Văn Bình",
			ParentPhone:    "0913222333",
			ChildName:      "Phạm Gia Hân",
			ChildBirthdate: "2021-02-14",
		},
	}
	for _, r := range samples {
		if _, err := recruits.Create(r); err != nil {
			logger.Log.WithError(err).Fatal("Failed to seed recruit data")
		}
	}

	stats := contacts.Stats()
	logger.Log.WithFields(logger.Fields{
		"contacts": stats.Total,
		"recruits": len(samples),
	}).Info("Seed data written")
}
