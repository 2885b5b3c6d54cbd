package database

import (
	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/models"
)

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Language{},
		&models.Category{},
		&models.Folder{},
		&models.Page{},
		&models.Brand{},
		&models.Product{},
		&models.CacheEntry{},
		&models.SystemSetting{},
	)
}

// SeedData ensures a default language exists so fresh installations can serve
// feeds immediately. Existing languages are never modified.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Language{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fallback := models.Language{
		Code:      "en",
		Name:      "English",
		IsDefault: true,
		Active:    true,
	}
	return db.Create(&fallback).Error
}
