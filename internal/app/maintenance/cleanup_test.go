package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/storefeed/internal/database/testutil"
	"github.com/charlesng35/storefeed/internal/models"
)

func TestPurgeExpiredCacheEntries(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	expired := models.CacheEntry{
		Key:       "feed:1:catalog",
		Value:     []byte("stale"),
		ExpiresAt: now.Add(-time.Hour),
	}
	fresh := models.CacheEntry{
		Key:       "feed:1:content",
		Value:     []byte("fresh"),
		ExpiresAt: now.Add(time.Hour),
	}
	eternal := models.CacheEntry{
		Key:   "pinned",
		Value: []byte("keep"),
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&eternal).Error)

	purged, err := PurgeExpiredCacheEntries(context.Background(), db, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), purged)

	var remaining []models.CacheEntry
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, entry := range remaining {
		require.NotEqual(t, "feed:1:catalog", entry.Key)
	}
}

func TestCleanerRunOnce(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.CacheEntry{
		Key:       "feed:2:brand",
		Value:     []byte("stale"),
		ExpiresAt: now.Add(-time.Minute),
	}).Error)

	cleaner := NewCleaner(db, WithNow(func() time.Time { return now }))
	require.NoError(t, cleaner.RunOnce(context.Background()))

	var count int64
	require.NoError(t, db.Model(&models.CacheEntry{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCleanerStartStop(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	cleaner := NewCleaner(db, WithCacheSchedule("@every 1h"))
	require.NoError(t, cleaner.Start())
	<-cleaner.Stop().Done()
}
