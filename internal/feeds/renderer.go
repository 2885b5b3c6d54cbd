package feeds

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/charlesng35/storefeed/internal/models"
)

const defaultItemLimit = 50

// Config controls feed rendering.
type Config struct {
	// BaseURL is the public storefront root used to build item links.
	BaseURL string
	// SiteName is used for channel titles. Defaults to the base URL host.
	SiteName string
	// ItemLimit caps the number of items per feed. Defaults to 50.
	ItemLimit int
}

// Renderer produces RSS 2.0 documents for the storefront feed contexts.
// Rendering queries the primary database directly; results are deterministic
// for a fixed database state.
type Renderer struct {
	db        *gorm.DB
	baseURL   string
	siteName  string
	itemLimit int
	now       func() time.Time
}

// NewRenderer constructs a Renderer.
func NewRenderer(db *gorm.DB, cfg Config) (*Renderer, error) {
	if db == nil {
		return nil, errors.New("feeds: db is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("feeds: base URL is required")
	}

	siteName := strings.TrimSpace(cfg.SiteName)
	if siteName == "" {
		siteName = baseURL
	}

	limit := cfg.ItemLimit
	if limit <= 0 {
		limit = defaultItemLimit
	}

	return &Renderer{
		db:        db,
		baseURL:   baseURL,
		siteName:  siteName,
		itemLimit: limit,
		now:       time.Now,
	}, nil
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	Description string  `xml:"description,omitempty"`
	PubDate     string  `xml:"pubDate"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

// Render produces the RSS document for the supplied context and language.
// parentID optionally scopes the feed to a category, folder or brand; callers
// are expected to have validated it against existence and visibility.
func (r *Renderer) Render(ctx context.Context, feedContext string, lang *models.Language, parentID *uint) ([]byte, error) {
	if lang == nil {
		return nil, errors.New("feeds: language is required")
	}

	var (
		items       []rssItem
		description string
		err         error
	)

	switch feedContext {
	case ContextCatalog:
		items, err = r.productItems(ctx, lang, parentID, nil)
		description = "Latest products"
	case ContextContent:
		items, err = r.pageItems(ctx, lang, parentID)
		description = "Latest pages"
	case ContextBrand:
		if parentID != nil {
			items, err = r.productItems(ctx, lang, nil, parentID)
		} else {
			items, err = r.brandItems(ctx)
		}
		description = "Brands and branded products"
	default:
		return nil, fmt.Errorf("feeds: unsupported context %q", feedContext)
	}
	if err != nil {
		return nil, err
	}

	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:         fmt.Sprintf("%s - %s", r.siteName, feedContext),
			Link:          r.baseURL,
			Description:   description,
			Language:      lang.Code,
			LastBuildDate: r.now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feeds: marshal rss: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}

func (r *Renderer) productItems(ctx context.Context, lang *models.Language, categoryID, brandID *uint) ([]rssItem, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("visible = ?", true).
		Where("language_id = ?", lang.ID)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if brandID != nil {
		q = q.Where("brand_id = ?", *brandID)
	}

	var products []models.Product
	if err := q.Order("updated_at DESC, id DESC").Limit(r.itemLimit).Find(&products).Error; err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(products))
	for _, product := range products {
		items = append(items, r.item(
			product.Name,
			r.baseURL+"/products/"+product.Slug,
			product.Description,
			product.UpdatedAt,
		))
	}
	return items, nil
}

func (r *Renderer) pageItems(ctx context.Context, lang *models.Language, folderID *uint) ([]rssItem, error) {
	q := r.db.WithContext(ctx).Model(&models.Page{}).
		Where("visible = ?", true).
		Where("language_id = ?", lang.ID)
	if folderID != nil {
		q = q.Where("folder_id = ?", *folderID)
	}

	var pages []models.Page
	if err := q.Order("updated_at DESC, id DESC").Limit(r.itemLimit).Find(&pages).Error; err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, r.item(
			page.Title,
			r.baseURL+"/pages/"+page.Slug,
			page.Summary,
			page.UpdatedAt,
		))
	}
	return items, nil
}

func (r *Renderer) brandItems(ctx context.Context) ([]rssItem, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).Model(&models.Brand{}).
		Where("visible = ?", true).
		Order("updated_at DESC, id DESC").
		Limit(r.itemLimit).
		Find(&brands).Error; err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(brands))
	for _, brand := range brands {
		items = append(items, r.item(
			brand.Name,
			r.baseURL+"/brands/"+brand.Slug,
			brand.Description,
			brand.UpdatedAt,
		))
	}
	return items, nil
}

func (r *Renderer) item(title, link, description string, updatedAt time.Time) rssItem {
	return rssItem{
		Title:       title,
		Link:        link,
		GUID:        rssGUID{Value: link, IsPermaLink: "true"},
		Description: description,
		PubDate:     updatedAt.UTC().Format(time.RFC1123Z),
	}
}
