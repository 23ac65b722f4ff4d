package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("RES_NAME", " 王小明 ")
	t.Setenv("RES_PHONE", "0912345678")
	t.Setenv("RES_EMAIL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LUNCHBOOK_PROFILE", "/etc/lunchbook/site.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "王小明", cfg.Contact.Name)
	assert.Equal(t, "0912345678", cfg.Contact.Phone)
	assert.Empty(t, cfg.Contact.Email)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "/etc/lunchbook/site.yaml", cfg.ProfilePath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnvBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	_, err := FromEnv()
	assert.Error(t, err)
}
