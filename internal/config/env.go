// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads the file named by ENV_FILE, or ".env" in the working
// directory, into the process environment. Variables already present in the
// environment are left untouched. A missing default file is not an error; a
// missing file named explicitly by ENV_FILE is.
func loadDotEnv() error {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit || path == "" {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
