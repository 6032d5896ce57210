// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.PasswordHashIterations <= 0 {
		return fmt.Errorf("%w: session duration and password hash iterations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}
