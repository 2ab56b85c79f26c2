package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"streamly-backend/pkg/models"
)

// Open connects to the sqlite database named by databaseURL and migrates the
// schema. Callers own the returned handle and close it on shutdown.
func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.User{}, &models.Video{}, &models.Comment{})
	return db, nil
}
