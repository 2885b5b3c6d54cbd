package app

import "github.com/charlesng35/storefeed/internal/feeds"

// RendererConfig converts the feed section into the renderer representation.
func (c FeedConfig) RendererConfig() feeds.Config {
	return feeds.Config{
		BaseURL:   c.BaseURL,
		SiteName:  c.SiteName,
		ItemLimit: c.ItemLimit,
	}
}
