package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join("testdata")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.True(t, cfg.Server.RateLimit.Enabled)
	require.Equal(t, 25, cfg.Server.RateLimit.MaxRequests)
	require.Equal(t, 30*time.Second, cfg.Server.RateLimit.Window)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.True(t, cfg.Database.Postgres.Enabled)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5433, cfg.Database.Postgres.Port)

	require.True(t, cfg.Cache.Redis.Enabled)
	require.Equal(t, "redis.example.com:6380", cfg.Cache.Redis.Address)
	require.Equal(t, 3, cfg.Cache.Redis.DB)
	require.Equal(t, 2*time.Second, cfg.Cache.Redis.Timeout)

	require.Equal(t, "https://shop.example.com/", cfg.Feeds.BaseURL)
	require.Equal(t, "Example Shop", cfg.Feeds.SiteName)
	require.Equal(t, 25, cfg.Feeds.ItemLimit)
	require.Equal(t, "super-secret", cfg.Feeds.FlushToken)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.False(t, cfg.Cache.Redis.Enabled)
	require.Equal(t, 50, cfg.Feeds.ItemLimit)
	require.Empty(t, cfg.Feeds.FlushToken)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())

	cfg.Server.Port = 8000
	cfg.Feeds.BaseURL = "not a url"
	require.Error(t, cfg.Validate())

	cfg.Feeds.BaseURL = "https://shop.example.com"
	cfg.Database.Driver = "oracle"
	require.Error(t, cfg.Validate())
}

func TestConfigAdapters(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{
			Driver: "postgres",
			Postgres: DBAuthConfig{
				Host:     "db.internal",
				Port:     5432,
				Database: "feeds",
				Username: "svc",
				Password: "pw",
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				Address: " redis.internal:6379 ",
				DB:      1,
				Timeout: 4 * time.Second,
			},
		},
		Feeds: FeedConfig{
			BaseURL:   "https://shop.example.com",
			SiteName:  "Shop",
			ItemLimit: 10,
		},
	}

	dbCfg := cfg.Database.ConnectionConfig()
	require.Equal(t, "db.internal", dbCfg.Host)
	require.Equal(t, "feeds", dbCfg.Name)
	require.Equal(t, "svc", dbCfg.User)

	redisCfg := cfg.Cache.RedisClientConfig()
	require.Equal(t, "redis.internal:6379", redisCfg.Address)
	require.Equal(t, 1, redisCfg.DB)

	rendererCfg := cfg.Feeds.RendererConfig()
	require.Equal(t, "https://shop.example.com", rendererCfg.BaseURL)
	require.Equal(t, 10, rendererCfg.ItemLimit)
}
