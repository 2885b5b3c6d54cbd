package models

import "time"

// Page is a content page surfaced by the content feed context.
type Page struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"size:256;not null" json:"title"`
	Slug       string `gorm:"size:256;uniqueIndex;not null" json:"slug"`
	Summary    string `gorm:"type:text" json:"summary,omitempty"`
	Body       string `gorm:"type:text" json:"body,omitempty"`
	FolderID   *uint  `gorm:"index" json:"folder_id,omitempty"`
	LanguageID uint   `gorm:"index;not null" json:"language_id"`
	Visible    bool   `gorm:"index;default:true" json:"visible"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
