// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The raw merge has no required fields; defaults are applied and checked
// on the [AppConfig] view.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (c *AppConfig) validate() error {
	switch c.DB.Driver {
	case DriverSQLite3, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, c.DB.Driver)
	}

	if c.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch c.Auth.PasswordHashing {
	case PasswordHashingPlain, PasswordHashingBcrypt:
	default:
		return fmt.Errorf("%w: unknown password hashing %q", ErrInvalidAuthConfigs, c.Auth.PasswordHashing)
	}

	if c.Log.File == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
