package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path or PostgreSQL URI)
//	-driver database driver: sqlite3, sqlite or pgx
//	-c/-config json file path with configs
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-password-hashing password storage: plain or bcrypt
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var logFile string
	var logLevel string
	var passwordHashing string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3, sqlite, pgx)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&passwordHashing, "password-hashing", "", "Password storage (plain, bcrypt)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogFile:         logFile,
			LogLevel:        logLevel,
			PasswordHashing: passwordHashing,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
