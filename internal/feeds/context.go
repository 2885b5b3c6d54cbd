package feeds

import "strings"

// Feed contexts supported by the storefront.
const (
	ContextCatalog = "catalog"
	ContextContent = "content"
	ContextBrand   = "brand"
)

// NormalizeContext lower-cases and trims a requested feed context, applying
// the catalog default for empty input. The second return reports whether the
// result is a supported context.
func NormalizeContext(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		normalized = ContextCatalog
	}

	switch normalized {
	case ContextCatalog, ContextContent, ContextBrand:
		return normalized, true
	default:
		return normalized, false
	}
}
