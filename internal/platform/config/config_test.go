package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/products_accounts/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/products")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StorePostgres, cfg.Store)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("STORE", "memory")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Setenv("STORE", "mongo")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StorePostgres, cfg.Store)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	viper.Reset()
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_CORSWildcard(t *testing.T) {
	viper.Reset()
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestConfig_RedisFeatures(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantEvents  bool
		wantCaching bool
	}{
		{name: "no redis", cfg: config.Config{Store: config.StorePostgres}},
		{name: "postgres with redis", cfg: config.Config{Store: config.StorePostgres, RedisAddr: "localhost:6379"}, wantEvents: true, wantCaching: true},
		{name: "memory with redis", cfg: config.Config{Store: config.StoreMemory, RedisAddr: "localhost:6379"}, wantEvents: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEvents, tt.cfg.EventsEnabled())
			assert.Equal(t, tt.wantCaching, tt.cfg.CacheEnabled())
		})
	}
}
