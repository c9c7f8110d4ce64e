package database

import (
	"fmt"
	"log"
	"os"

	"publisher-app/internal/domain/blog"
	"publisher-app/internal/domain/catalog"
	"publisher-app/internal/domain/company"
	"publisher-app/internal/domain/contact"
	"publisher-app/internal/domain/events"
	"publisher-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs AutoMigrate over every domain model. Split out from InitDB
// so tests can run it against their own gorm connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// auth
		&users.User{},
		&users.VerificationToken{},

		// content
		&catalog.Book{},
		&blog.Article{},
		&events.Event{},

		// company
		&company.Milestone{},
		&company.SiteSetting{},

		// contact
		&contact.Message{},
	)
}
