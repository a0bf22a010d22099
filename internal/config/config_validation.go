// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the client view satisfies all invariants before it is
// used at startup. The first failing group is reported, wrapped with the
// offending detail.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: a file-backed DSN is required", ErrInvalidStorageConfigs)
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: backend address is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if strings.TrimSpace(cfg.App.AcademicYear) == "" {
		return fmt.Errorf("%w: academic year is required", ErrInvalidAppConfigs)
	}
	if cfg.App.PageSize != DefaultPageSize {
		return fmt.Errorf("%w: page size must be %d, got %d", ErrInvalidAppConfigs, DefaultPageSize, cfg.App.PageSize)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: refresh interval must not be negative", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.EnrichConcurrency < 1 {
		return fmt.Errorf("%w: enrich concurrency must be at least 1", ErrInvalidWorkerConfigs)
	}

	return nil
}
