package db

import (
	"babyshower_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Connect opens a MySQL connection. TranslateError makes the driver surface
// duplicate-key violations as gorm.ErrDuplicatedKey, which the handlers map to
// 409 conflicts; the unique indexes (participant name, prediction participant)
// are the authoritative uniqueness checks, the pre-insert lookups are only the
// friendly fast path.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	return db
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db := Connect(dsn)
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := db.AutoMigrate(&domain.Participant{}, &domain.Prediction{}, &domain.Sticker{}, &domain.Preorder{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
