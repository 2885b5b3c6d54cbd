package feeds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeContextDefaultsToCatalog(t *testing.T) {
	normalized, ok := NormalizeContext("")
	require.True(t, ok)
	require.Equal(t, ContextCatalog, normalized)
}

func TestNormalizeContextAcceptsKnownValues(t *testing.T) {
	for _, raw := range []string{"catalog", "Content", " BRAND "} {
		_, ok := NormalizeContext(raw)
		require.True(t, ok, "expected %q to be accepted", raw)
	}
}

func TestNormalizeContextRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"unknown", "catalogue", "rss"} {
		_, ok := NormalizeContext(raw)
		require.False(t, ok, "expected %q to be rejected", raw)
	}
}
