package config

import "errors"

// Validation errors returned by [AppConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates an unsupported password hashing mode.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidLogConfigs indicates missing logging settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
