package database

import (
	"log"
	"sync"

	"github.com/Sprachey/Blogspot/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
)

// GetDB opens the database on first use and migrates the schema.
func GetDB() *gorm.DB {
	dbOnce.Do(func() {
		dsn := config.Get().DatabaseURL

		var err error
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("Failed to open database %q: %v", dsn, err)
		}

		// readers shouldn't block the writer, and dangling references are
		// rejected by the store itself
		db.Exec(`PRAGMA journal_mode=WAL;`)
		db.Exec(`PRAGMA foreign_keys=ON;`)

		if err := db.AutoMigrate(&User{}, &Post{}, &Comment{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	})

	return db
}

func CloseDB() {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
