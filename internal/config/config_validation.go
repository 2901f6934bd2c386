package config

// validate checks that the final [ClientConfig] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel
// error otherwise.
func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.File.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.LoginDelay < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
