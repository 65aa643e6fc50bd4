package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://moneybird.com/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "moneybird-keys", cfg.Scan.CredentialsFile)
	assert.False(t, cfg.Scan.Watch)
	assert.Equal(t, time.Second, cfg.Scan.WatchDebounce)
}

func TestLoad_EnvOverrides(t *testing.T) {

	t.Setenv("MONEYBIRD_API__BASE_URL", "http://127.0.0.1:8080/api")
	t.Setenv("MONEYBIRD_SCAN__CREDENTIALS_FILE", "/etc/moneybird/keys")
	t.Setenv("MONEYBIRD_SCAN__WATCH", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.API.BaseURL)
	assert.Equal(t, "/etc/moneybird/keys", cfg.Scan.CredentialsFile)
	assert.True(t, cfg.Scan.Watch)
}
