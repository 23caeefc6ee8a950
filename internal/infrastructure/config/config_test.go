package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "CoatDesk", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "https://api.twilio.com", cfg.Twilio.BaseURL)
	assert.Equal(t, "210-1234567", cfg.Notifications.ContactPhone)
	assert.Equal(t, 100, cfg.Security.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.Security.RateLimitWindow)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("DATA_DIR", "/srv/coatdesk/data")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC_env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "/srv/coatdesk/data", cfg.Storage.DataDir)
	assert.Equal(t, "AC_env", cfg.Twilio.AccountSID)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidateConfigRequiresDataDir(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{DataDir: ""},
	}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory")
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := AppConfig{Environment: "development"}
	prod := AppConfig{Environment: "production"}

	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
