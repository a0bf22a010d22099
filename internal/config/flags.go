package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-d local SQLite database DSN
//	-c/-config json file path with configs
//	-request-timeout backend request timeout (e.g., "15s", "1m")
//	-academic-year academic period used for scoped actions (e.g., "2023-2024")
//	-refresh-interval background refresh period (e.g., "5m"); 0 disables
//	-enrich-concurrency max concurrent per-student summary requests
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var academicYear string
	var refreshInterval time.Duration
	var enrichConcurrency int
	var logLevel string

	fs := flag.NewFlagSet("insighted", flag.ContinueOnError)
	fs.StringVar(&adapterAddress, "a", "", "Backend address")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&academicYear, "academic-year", "", "Academic year (e.g., 2023-2024)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 5m)")
	fs.IntVar(&enrichConcurrency, "enrich-concurrency", 0, "Max concurrent summary requests")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AcademicYear: academicYear,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval:   refreshInterval,
			EnrichConcurrency: enrichConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
