package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("ENABLE_AUDIT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.False(t, cfg.EnableAudit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_AuditRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ENABLE_AUDIT", "true")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_AuditEnabled(t *testing.T) {
	t.Setenv("ENABLE_AUDIT", "TRUE")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/nobra")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.EnableAudit)
	assert.Equal(t, "postgres://localhost:5432/nobra", cfg.DatabaseURL)
}

func TestLoad_CORSOriginList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}
