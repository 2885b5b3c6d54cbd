package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/models"
)

var (
	// ErrLanguageNotFound indicates the requested locale is not configured or inactive.
	ErrLanguageNotFound = errors.New("language service: language not found")

	// ErrNoDefaultLanguage indicates the installation has no default locale.
	// This is a deployment problem, not a per-request failure.
	ErrNoDefaultLanguage = errors.New("language service: no default language configured")
)

// LanguageService resolves locale tags against the configured languages.
type LanguageService struct {
	db *gorm.DB
}

// NewLanguageService constructs a language service once a database handle is supplied.
func NewLanguageService(db *gorm.DB) (*LanguageService, error) {
	if db == nil {
		return nil, errors.New("language service: db is required")
	}
	return &LanguageService{db: db}, nil
}

// ResolveLocale returns the active language matching the supplied tag.
func (s *LanguageService) ResolveLocale(ctx context.Context, tag string) (*models.Language, error) {
	if s == nil {
		return nil, errors.New("language service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, ErrLanguageNotFound
	}

	var lang models.Language
	err := s.db.WithContext(ctx).Take(&lang, "code = ? AND active = ?", tag, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLanguageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}

// DefaultLocale returns the active default language.
func (s *LanguageService) DefaultLocale(ctx context.Context) (*models.Language, error) {
	if s == nil {
		return nil, errors.New("language service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	var lang models.Language
	err := s.db.WithContext(ctx).Take(&lang, "is_default = ? AND active = ?", true, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoDefaultLanguage
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}
