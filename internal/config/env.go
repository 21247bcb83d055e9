// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads APP_*, STORAGE_DB_* and CONFIG into a fresh config.
// Unset variables leave their fields zero so later sources can fill them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return &cfg, nil
}
