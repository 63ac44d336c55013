package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_USER", "voll")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "voll_candidate", cfg.Database.Name)
	assert.True(t, cfg.Summary.Enabled)
	assert.Equal(t, time.Minute, cfg.Summary.CacheTTL)
	assert.True(t, cfg.Exports.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_USER", "voll")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://app.voll.fit, https://admin.voll.fit")
	t.Setenv("SUMMARY_CACHE_TTL", "30s")
	t.Setenv("ENABLE_EXPORTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"https://app.voll.fit", "https://admin.voll.fit"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Summary.CacheTTL)
	assert.False(t, cfg.Exports.Enabled)
}

func TestLoadBadCacheTTLFallsBack(t *testing.T) {
	t.Setenv("DB_USER", "voll")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SUMMARY_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Summary.CacheTTL)
}
