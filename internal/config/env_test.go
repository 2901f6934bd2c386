package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOGIN_DELAY":         "150ms",
		"APP_DISABLE_LOGIN_DELAY": "true",
		"APP_INITIAL_FRAGMENT":    "#/account",
		"APP_VERSION":             "1.2.3",

		// Storage has nested prefixes: STORAGE_ + FILE_ / DB_
		"STORAGE_BACKEND":         "sqlite",
		"STORAGE_FILE_PATH":       "/var/data/accounts.json",
		"STORAGE_DB_DATABASE_URI": "/var/data/accounts.db",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, 150*time.Millisecond, cfg.App.LoginDelay)
	assert.True(t, cfg.App.DisableLoginDelay)
	assert.Equal(t, "#/account", cfg.App.InitialFragment)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/var/data/accounts.json", cfg.Storage.File.Path)
	assert.Equal(t, "/var/data/accounts.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_LOGIN_DELAY", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
