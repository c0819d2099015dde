package database

import (
	"log"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date via GORM auto-migration. Both the
// postgres deployment and the sqlite test databases use the same entity set.
func Migrate(db *gorm.DB) error {
	log.Printf("[Database] Running auto-migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Campaign{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
		&models.AIPreference{},
		&models.GeneratedContent{},
	)
}
