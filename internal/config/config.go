// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other source.
const (
	DefaultRequestTimeout    = 15 * time.Second
	DefaultAcademicYear      = "2023-2024"
	DefaultPageSize          = 10
	DefaultEnrichConcurrency = 8
	DefaultLogLevel          = "debug"
	DefaultEnvFile           = ".env"
)

// StructuredConfig is the top-level configuration container for the
// InsightEd client. It aggregates all sub-configurations and is populated by
// merging values from defaults, a dotenv file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings that shape what the client shows: the academic
	// period used for scoped mutations, the table page size and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs and fan-out limits.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-wide presentation settings.
type App struct {
	// AcademicYear is the period identifier sent with scoped mutations and
	// cluster queries (e.g. "2023-2024").
	// Env: APP_ACADEMIC_YEAR
	AcademicYear string `env:"ACADEMIC_YEAR"`

	// PageSize is the number of rows per table page. Only 10 is accepted.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file (e.g. "file:insighted.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the backend connection settings.
type Adapter struct {
	// HTTPAddress is the backend base URL. A bare "host:port" is accepted
	// and treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the background refresh broadcast.
	// Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// EnrichConcurrency caps concurrent per-student summary requests.
	// Env: WORKERS_ENRICH_CONCURRENCY
	EnrichConcurrency int `env:"ENRICH_CONCURRENCY"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AcademicYear: DefaultAcademicYear,
			PageSize:     DefaultPageSize,
			LogLevel:     DefaultLogLevel,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			EnrichConcurrency: DefaultEnrichConcurrency,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Dotenv file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
