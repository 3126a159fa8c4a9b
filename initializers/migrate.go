package initializers

import (
	"log"

	"cantina-api/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the four tables of the schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Product{},
		&models.Account{},
		&models.Order{},
		&models.Sale{},
	)
	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database migrations completed")
	return nil
}
