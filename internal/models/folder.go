package models

import "time"

// Folder groups content pages. The content feed context may be scoped to a
// folder via its numeric id.
type Folder struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:128;not null" json:"name"`
	Slug      string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Visible   bool   `gorm:"index;default:true" json:"visible"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
