package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"recreationGov": map[string]any{
			"apiKey": "",
		},
		"watcher": map[string]any{
			"interval": "10m",
		},
		"auth": map[string]any{
			"defaultUserId": 1,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "RECREATIONGOV_APIKEY", want: "recreationGov.apiKey"},
		{envKey: "WATCHER_INTERVAL", want: "watcher.interval"},
		{envKey: "AUTH_DEFAULTUSERID", want: "auth.defaultUserId"},
		{envKey: "CACHE__ADDR", want: "cache.addr"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Setenv("WATCHER_INTERVAL", "30s")
	t.Setenv("RECREATIONGOV_APIKEY", "ridb-key")

	cfg, err := LoadWithEnv[Config]("campwatch", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "campwatch", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowOrigins)
	require.NotNil(t, cfg.Watcher)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Watcher.Interval)
	require.NotNil(t, cfg.RecreationGov)
	assert.Equal(t, "ridb-key", cfg.RecreationGov.APIKey)
	assert.Equal(t, 25, cfg.RecreationGov.PageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", "testdata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, uint(defaultUserID), cfg.Auth.DefaultUserID)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "https://ridb.recreation.gov/api/v1", cfg.RecreationGov.RIDBBaseURL)
	assert.Equal(t, "https://www.recreation.gov", cfg.RecreationGov.BookingBaseURL)
	assert.Equal(t, defaultWatcherInterval, cfg.Watcher.Interval)
	assert.False(t, cfg.Watcher.Enabled)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, "campwatch:search", cfg.Cache.Prefix)
	assert.NotNil(t, cfg.Delivery)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{DefaultUserID: 9},
		Watcher: &WatcherConfig{Enabled: true, Interval: time.Minute},
	}
	applyDefaults(cfg)

	assert.Equal(t, uint(9), cfg.Auth.DefaultUserID)
	assert.Equal(t, time.Minute, cfg.Watcher.Interval)
	assert.True(t, cfg.Watcher.Enabled)
}
