package database

import (
	"gorm.io/gorm"

	"influmatch_backend/internal/models"
)

// Migrate runs the schema migrations for every model in dependency
// order. UUID primary keys need the uuid-ossp extension.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.InfluencerProfile{},
		&models.Campaign{},
		&models.Payment{},
		&models.Notification{},
		&models.SubscriptionPlan{},
	)
}
