package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithEnv(t *testing.T) {
	t.Setenv("CONFIG_ENV", "test")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEBHOOK_URL", "https://example.com/hook")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "https://example.com/hook", cfg.WebhookURL)
	assert.Equal(t, "https://api.telegram.org", cfg.APIBase)
	assert.Equal(t, 8, cfg.CodeLength)
	assert.Equal(t, 10*time.Second, cfg.SendTimeout)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("CONFIG_ENV", "test")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("WEBHOOK_URL", "")

	_, err := Load()
	require.Error(t, err)
}
