package config

import (
	"time"
)

// Supported storage backends for the local key-value store.
const (
	// BackendFile persists the store in a single JSON file.
	BackendFile = "file"
	// BackendSQLite persists the store in an SQLite database.
	BackendSQLite = "sqlite"
	// BackendMemory keeps the store in memory only (nothing survives exit).
	BackendMemory = "memory"
)

// Defaults applied by [GetClientConfig] when a setting is left empty.
const (
	// DefaultStoragePath is the JSON store file used by the file backend.
	DefaultStoragePath = "accountkeeper.json"
	// DefaultLoginDelay is the cosmetic delay applied to every login
	// attempt. Purely presentational; disable with APP_DISABLE_LOGIN_DELAY.
	DefaultLoginDelay = 300 * time.Millisecond
)

// StructuredConfig is the top-level configuration container for the
// account-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the login delay and the
	// initial navigation fragment.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local key-value store backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LoginDelay is the artificial delay applied before a login attempt
	// resolves (e.g. "300ms"). Cosmetic only.
	// Env: APP_LOGIN_DELAY
	LoginDelay time.Duration `env:"LOGIN_DELAY"`

	// DisableLoginDelay turns the login delay off entirely, regardless of
	// LoginDelay.
	// Env: APP_DISABLE_LOGIN_DELAY
	DisableLoginDelay bool `env:"DISABLE_LOGIN_DELAY"`

	// InitialFragment is the location fragment the router starts from
	// (e.g. "#/account"). Empty means the login default.
	// Env: APP_INITIAL_FRAGMENT
	InitialFragment string `env:"INITIAL_FRAGMENT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local key-value store.
type Storage struct {
	// Backend selects the store implementation: "file", "sqlite", or
	// "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// File holds settings for the JSON-file backend.
	File File `envPrefix:"FILE_"`

	// DB holds settings for the SQLite backend.
	DB DB `envPrefix:"DB_"`
}

// File holds file-system settings for the JSON store backend.
type File struct {
	// Path is the location of the JSON store file.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite data source name (a file path, or ":memory:").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// ClientApp holds application settings derived from the shared structured
// config, with defaults applied.
type ClientApp struct {
	// LoginDelay is the effective cosmetic login delay; zero disables it.
	LoginDelay time.Duration
	// InitialFragment is the fragment the router starts from.
	InitialFragment string
	// Version is the application version string.
	Version string
}

// ClientStorage holds the effective store backend selection.
type ClientStorage struct {
	// Backend is one of the Backend* constants.
	Backend string
	// File holds JSON-file backend settings.
	File File
	// DB holds SQLite backend settings.
	DB DB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains store backend settings.
	Storage ClientStorage
}

// GetClientConfig loads, merges, and validates the application configuration
// from all available sources, maps it to the client view, and fills in
// defaults (file backend, default store path, default login delay).
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LoginDelay:      cfg.App.LoginDelay,
			InitialFragment: cfg.App.InitialFragment,
			Version:         cfg.App.Version,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			File:    cfg.Storage.File,
			DB:      cfg.Storage.DB,
		},
	}

	if clientCfg.Storage.Backend == "" {
		clientCfg.Storage.Backend = BackendFile
	}
	if clientCfg.Storage.Backend == BackendFile && clientCfg.Storage.File.Path == "" {
		clientCfg.Storage.File.Path = DefaultStoragePath
	}
	if clientCfg.App.LoginDelay == 0 {
		clientCfg.App.LoginDelay = DefaultLoginDelay
	}
	if cfg.App.DisableLoginDelay {
		clientCfg.App.LoginDelay = 0
	}

	return clientCfg, clientCfg.validate()
}
