package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Supported values for DB.Driver.
const (
	DriverSQLite3  = "sqlite3"
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Supported values for App.PasswordHashing.
const (
	PasswordHashingPlain  = "plain"
	PasswordHashingBcrypt = "bcrypt"
)

const (
	appDirName      = "go-task-keeper"
	defaultDBFile   = "tasks.db"
	defaultLogFile  = "tasktracker.log"
	defaultLogLevel = "info"
)

// AppLog holds logging settings.
type AppLog struct {
	// File is the path of the JSON log file.
	File string
	// Level is a zerolog level name.
	Level string
}

// AppAuth holds account credential settings.
type AppAuth struct {
	// PasswordHashing is either [PasswordHashingPlain] or [PasswordHashingBcrypt].
	PasswordHashing string
}

// AppDB holds the store connection settings.
type AppDB struct {
	// Driver is one of [DriverSQLite3], [DriverSQLite] or [DriverPostgres].
	Driver string
	// DSN is a SQLite file path or a PostgreSQL connection string.
	DSN string
}

// AppConfig is the runtime configuration of the task tracker, assembled from
// [StructuredConfig] with defaults applied.
type AppConfig struct {
	Log  AppLog
	Auth AppAuth
	DB   AppDB
}

// IsSQLite reports whether the configured driver is one of the SQLite drivers.
func (c AppDB) IsSQLite() bool {
	return c.Driver == DriverSQLite3 || c.Driver == DriverSQLite
}

// GetAppConfig builds and validates the runtime config from the merged
// structured configuration.
func GetAppConfig() (*AppConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newAppConfig(cfg)
}

func newAppConfig(cfg *StructuredConfig) (*AppConfig, error) {
	appCfg := &AppConfig{
		Log: AppLog{
			File:  cfg.App.LogFile,
			Level: cfg.App.LogLevel,
		},
		Auth: AppAuth{
			PasswordHashing: cfg.App.PasswordHashing,
		},
		DB: AppDB{
			Driver: cfg.Storage.DB.Driver,
			DSN:    cfg.Storage.DB.DSN,
		},
	}

	if err := appCfg.applyDefaults(os.UserConfigDir); err != nil {
		return nil, err
	}

	return appCfg, appCfg.validate()
}

// applyDefaults fills empty settings. The database and the log file default
// to the per-user config directory (e.g. ~/.config/go-task-keeper).
func (c *AppConfig) applyDefaults(userConfigDir func() (string, error)) error {
	if c.DB.Driver == "" {
		c.DB.Driver = DriverSQLite3
	}
	if c.Auth.PasswordHashing == "" {
		c.Auth.PasswordHashing = PasswordHashingPlain
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}

	if c.DB.DSN != "" && c.Log.File != "" {
		return nil
	}

	baseDir, err := userConfigDir()
	if err != nil {
		return fmt.Errorf("resolve user config dir: %w", err)
	}
	appDir := filepath.Join(baseDir, appDirName)

	if c.DB.DSN == "" && c.DB.IsSQLite() {
		c.DB.DSN = filepath.Join(appDir, defaultDBFile)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(appDir, defaultLogFile)
	}

	return nil
}
