package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/cache"
	"github.com/charlesng35/storefeed/internal/feeds"
	"github.com/charlesng35/storefeed/internal/models"
	"github.com/charlesng35/storefeed/pkg/logger"
	"github.com/charlesng35/storefeed/pkg/metrics"
)

// ErrFeedNotFound indicates the request referenced an unknown context, locale
// or parent entity. All validation failures collapse to this error so the API
// surface leaks no detail about what exactly was wrong.
var ErrFeedNotFound = errors.New("feed service: feed not found")

// FeedContentType is returned for every feed regardless of context.
const FeedContentType = "application/rss+xml"

const feedKeyPrefix = "feed"

// FeedRenderer produces the feed body for a validated request.
type FeedRenderer interface {
	Render(ctx context.Context, feedContext string, lang *models.Language, parentID *uint) ([]byte, error)
}

// FeedRequest carries the raw, unvalidated parameters of one feed lookup.
type FeedRequest struct {
	Context  string
	Locale   string
	ParentID string
	Flush    bool
	IsAdmin  bool
}

// Feed is the resolved response payload.
type Feed struct {
	Body        []byte
	ContentType string
}

// FeedService resolves feed requests against the cache, regenerating content
// on miss or flush. It is the single owner of the feed cache key space.
type FeedService struct {
	db        *gorm.DB
	store     cache.Store
	renderer  FeedRenderer
	languages *LanguageService
	settings  *SettingsService
	log       *zap.Logger
}

// NewFeedService constructs the feed service.
func NewFeedService(db *gorm.DB, store cache.Store, renderer FeedRenderer, languages *LanguageService, settings *SettingsService) (*FeedService, error) {
	if db == nil {
		return nil, errors.New("feed service: db is required")
	}
	if store == nil {
		return nil, errors.New("feed service: cache store is required")
	}
	if renderer == nil {
		return nil, errors.New("feed service: renderer is required")
	}
	if languages == nil {
		return nil, errors.New("feed service: language service is required")
	}
	if settings == nil {
		return nil, errors.New("feed service: settings service is required")
	}

	return &FeedService{
		db:        db,
		store:     store,
		renderer:  renderer,
		languages: languages,
		settings:  settings,
		log:       logger.WithModule("feeds"),
	}, nil
}

// GetFeed validates the request, then serves the feed via cache-aside:
// cached content is returned as-is; on miss or admin flush the feed is
// re-rendered and stored with the configured TTL, overwriting any previous
// entry. The cache key covers (language, context) only; requests scoped to
// different parents within the same language/context share one cached
// payload, matching the storefront's long-standing behaviour.
//
// Concurrent misses for the same key may each render and write; writes are
// idempotent full replacements so the last writer wins.
func (s *FeedService) GetFeed(ctx context.Context, req FeedRequest) (*Feed, error) {
	if s == nil {
		return nil, errors.New("feed service: service not initialised")
	}
	ctx = ensuredContext(ctx)

	feedContext, ok := feeds.NormalizeContext(req.Context)
	if !ok {
		return nil, ErrFeedNotFound
	}

	lang, err := s.resolveLanguage(ctx, req.Locale)
	if err != nil {
		return nil, err
	}

	parentID, err := s.resolveParent(ctx, feedContext, req.ParentID)
	if err != nil {
		return nil, err
	}

	// Flush is honored for admin callers only; for everyone else the flag
	// is ignored and the request is served normally.
	flush := req.Flush && req.IsAdmin

	key := feedCacheKey(lang.ID, feedContext)

	body, hit, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("feed service: cache get %q: %w", key, err)
	}

	if !hit || flush {
		result := "miss"
		if flush {
			result = "flush"
		}
		metrics.FeedRequests.WithLabelValues(feedContext, result).Inc()

		body, err = s.regenerate(ctx, key, feedContext, lang, parentID)
		if err != nil {
			return nil, err
		}
	} else {
		metrics.FeedRequests.WithLabelValues(feedContext, "hit").Inc()
	}

	return &Feed{Body: body, ContentType: FeedContentType}, nil
}

func (s *FeedService) resolveLanguage(ctx context.Context, locale string) (*models.Language, error) {
	if strings.TrimSpace(locale) == "" {
		// No default language is a deployment problem and must not be
		// masked as a not-found response.
		return s.languages.DefaultLocale(ctx)
	}

	lang, err := s.languages.ResolveLocale(ctx, locale)
	if errors.Is(err, ErrLanguageNotFound) {
		return nil, ErrFeedNotFound
	}
	return lang, err
}

// resolveParent validates the optional parent identifier: it must be numeric
// and reference an existing, visible entity of the context's parent kind.
func (s *FeedService) resolveParent(ctx context.Context, feedContext, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, ErrFeedNotFound
	}
	id := uint(parsed)

	var count int64
	query := s.db.WithContext(ctx)
	switch feedContext {
	case feeds.ContextCatalog:
		err = query.Model(&models.Category{}).Where("id = ? AND visible = ?", id, true).Count(&count).Error
	case feeds.ContextContent:
		err = query.Model(&models.Folder{}).Where("id = ? AND visible = ?", id, true).Count(&count).Error
	case feeds.ContextBrand:
		err = query.Model(&models.Brand{}).Where("id = ? AND visible = ?", id, true).Count(&count).Error
	default:
		return nil, ErrFeedNotFound
	}
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrFeedNotFound
	}

	return &id, nil
}

func (s *FeedService) regenerate(ctx context.Context, key, feedContext string, lang *models.Language, parentID *uint) ([]byte, error) {
	start := time.Now()
	body, err := s.renderer.Render(ctx, feedContext, lang, parentID)
	if err != nil {
		return nil, fmt.Errorf("feed service: render %s: %w", feedContext, err)
	}
	metrics.FeedRenderDuration.WithLabelValues(feedContext).Observe(time.Since(start).Seconds())

	ttl := s.settings.FeedTTL(ctx)
	if err := s.store.Set(ctx, key, body, ttl); err != nil {
		return nil, fmt.Errorf("feed service: cache set %q: %w", key, err)
	}

	s.log.Debug("feed regenerated",
		zap.String("context", feedContext),
		zap.String("locale", lang.Code),
		zap.Duration("ttl", ttl),
	)

	return body, nil
}

// feedCacheKey builds the cache key from the numeric language id and the
// context. The parent id is deliberately excluded.
func feedCacheKey(languageID uint, feedContext string) string {
	return fmt.Sprintf("%s:%d:%s", feedKeyPrefix, languageID, feedContext)
}
