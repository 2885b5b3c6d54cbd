package models

import "time"

// Brand is a product manufacturer surfaced by the brand feed context.
type Brand struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Slug        string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Visible     bool   `gorm:"index;default:true" json:"visible"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
