package database

import (
	"log"

	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/domain/requests"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	DB = db
}

// Migrate creates/updates all domain tables. Split out from InitDB so tests
// can run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Artist{},
		&catalog.Release{},
		&catalog.Track{},
		&catalog.Feature{},
		&requests.ChangeRequest{},
	)
}
