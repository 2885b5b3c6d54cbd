package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charlesng35/storefeed/internal/services"
	apperrors "github.com/charlesng35/storefeed/pkg/errors"
	"github.com/charlesng35/storefeed/pkg/logger"
	"github.com/charlesng35/storefeed/pkg/response"
)

// FlushTokenHeader carries the token that authorises a cache flush.
const FlushTokenHeader = "X-Feed-Token"

// FeedHandler exposes the RSS feed endpoint.
type FeedHandler struct {
	feeds      *services.FeedService
	flushToken string
	log        *zap.Logger
}

// NewFeedHandler constructs the handler. An empty flushToken disables
// flush authorisation entirely.
func NewFeedHandler(feeds *services.FeedService, flushToken string) (*FeedHandler, error) {
	if feeds == nil {
		return nil, errors.New("feed handler: feed service is required")
	}
	return &FeedHandler{
		feeds:      feeds,
		flushToken: flushToken,
		log:        logger.WithModule("handlers.feeds"),
	}, nil
}

// Get serves GET /feed. Validation failures surface as 404 so the endpoint
// leaks nothing about which catalogue entities exist.
func (h *FeedHandler) Get(c *gin.Context) {
	req := services.FeedRequest{
		Context:  c.Query("context"),
		Locale:   c.Query("lang"),
		ParentID: c.Query("id"),
		Flush:    c.Query("flush") == "1" || c.Query("flush") == "true",
		IsAdmin:  h.isAdmin(c),
	}

	feed, err := h.feeds.GetFeed(requestContext(c), req)
	if err != nil {
		if errors.Is(err, services.ErrFeedNotFound) {
			response.Error(c, apperrors.ErrNotFound)
			return
		}
		h.log.Error("feed lookup failed",
			zap.String("context", req.Context),
			zap.String("locale", req.Locale),
			zap.Error(err),
		)
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, feed.ContentType, feed.Body)
}

// isAdmin reports whether the caller presented the configured flush token,
// either as a header or a query parameter.
func (h *FeedHandler) isAdmin(c *gin.Context) bool {
	if h.flushToken == "" {
		return false
	}

	presented := c.GetHeader(FlushTokenHeader)
	if presented == "" {
		presented = c.Query("token")
	}
	if presented == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.flushToken)) == 1
}
