package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend storage backend (file, sqlite, memory)
//	-f file storage path (file backend)
//	-d database DSN (sqlite backend)
//	-login-delay cosmetic login delay (e.g., "300ms")
//	-no-login-delay disable the login delay entirely
//	-fragment initial location fragment (e.g., "#/account")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backend string
	var fileStoragePath string
	var databaseDSN string
	var loginDelay time.Duration
	var disableLoginDelay bool
	var initialFragment string
	var jsonConfigPath string

	flag.StringVar(&backend, "backend", "", "Storage backend: file, sqlite or memory")
	flag.StringVar(&fileStoragePath, "f", "", "File storage path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.DurationVar(&loginDelay, "login-delay", 0, "Cosmetic login delay (e.g., 300ms)")
	flag.BoolVar(&disableLoginDelay, "no-login-delay", false, "Disable the login delay")
	flag.StringVar(&initialFragment, "fragment", "", "Initial location fragment")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LoginDelay:        loginDelay,
			DisableLoginDelay: disableLoginDelay,
			InitialFragment:   initialFragment,
		},
		Storage: Storage{
			Backend: backend,
			File: File{
				Path: fileStoragePath,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
