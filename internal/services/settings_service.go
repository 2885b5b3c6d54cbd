package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/database"
)

// DefaultFeedTTL applies when the feed_ttl setting is missing or unusable.
const DefaultFeedTTL = 7200 * time.Second

// SettingsService reads runtime settings from the system settings table.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService constructs a settings service once a database handle is supplied.
func NewSettingsService(db *gorm.DB) (*SettingsService, error) {
	if db == nil {
		return nil, errors.New("settings service: db is required")
	}
	return &SettingsService{db: db}, nil
}

// FeedTTL returns the configured feed cache TTL. Missing, non-numeric or
// non-positive values fall back to DefaultFeedTTL.
func (s *SettingsService) FeedTTL(ctx context.Context) time.Duration {
	if s == nil {
		return DefaultFeedTTL
	}
	ctx = ensuredContext(ctx)

	raw, err := database.GetSystemSetting(ctx, s.db, database.FeedTTLSetting)
	if err != nil || raw == "" {
		return DefaultFeedTTL
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return DefaultFeedTTL
	}

	return time.Duration(seconds) * time.Second
}

// SetFeedTTL persists the feed cache TTL in seconds.
func (s *SettingsService) SetFeedTTL(ctx context.Context, seconds int) error {
	if s == nil {
		return errors.New("settings service: service not initialised")
	}
	if seconds <= 0 {
		return errors.New("settings service: ttl must be positive")
	}
	return database.UpsertSystemSetting(ensuredContext(ctx), s.db, database.FeedTTLSetting, strconv.Itoa(seconds))
}
