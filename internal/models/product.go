package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog item surfaced by the catalog and brand feed contexts.
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:256;not null" json:"name"`
	Slug        string         `gorm:"size:256;uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	PriceCents  int64          `gorm:"not null;default:0" json:"price_cents"`
	Currency    string         `gorm:"size:3;default:EUR" json:"currency"`
	CategoryID  *uint          `gorm:"index" json:"category_id,omitempty"`
	BrandID     *uint          `gorm:"index" json:"brand_id,omitempty"`
	LanguageID  uint           `gorm:"index;not null" json:"language_id"`
	Attributes  datatypes.JSON `gorm:"type:json" json:"attributes,omitempty"`
	Visible     bool           `gorm:"index;default:true" json:"visible"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
