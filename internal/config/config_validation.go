// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// applyDevMode substitutes the development session secret when DevMode is on
// and no secret was configured.
func (cfg *StructuredConfig) applyDevMode() {
	if cfg.App.DevMode && strings.TrimSpace(cfg.App.SessionSecret) == "" {
		cfg.App.SessionSecret = DevSessionSecret
	}
}

// validate checks that the final merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.SessionSecret) == "" {
		return ErrMissingSessionSecret
	}

	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSessionTTL, cfg.App.SessionTTL)
	}

	if strings.TrimSpace(cfg.App.MasterAdminUsername) == "" {
		return ErrMissingMasterAdmin
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.DB.Driver)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrMissingDSN
	}

	return nil
}
