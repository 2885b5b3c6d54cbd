package models

import "time"

// Language represents a storefront locale. Exactly one active language should
// be flagged as the default; feeds cannot be served without one.
type Language struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Code      string `gorm:"size:8;uniqueIndex;not null" json:"code"`
	Name      string `gorm:"size:64;not null" json:"name"`
	IsDefault bool   `gorm:"index" json:"is_default"`
	Active    bool   `gorm:"index;default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
