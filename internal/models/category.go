package models

import "time"

// Category groups products in the catalog tree. Feed requests may scope the
// catalog context to a category via its numeric id.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Slug        string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	ParentID    *uint  `gorm:"index" json:"parent_id,omitempty"`
	Visible     bool   `gorm:"index;default:true" json:"visible"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
