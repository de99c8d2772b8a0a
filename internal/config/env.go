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

// parseEnvWithPrefix is [parseEnv] with prefix prepended to every variable
// name, so SUPABASE_URL is looked up as <prefix>SUPABASE_URL.
func parseEnvWithPrefix(cfg any, prefix string) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("error getting %s env configs: %w", prefix, err)
	}

	return nil
}

// loadDotEnv loads a dotenv file into the process environment. Variables
// already present in the environment are left untouched.
//
// path resolution: explicit argument, then ENV_FILE, then [DefaultEnvFile].
// Only the default file may be absent.
func loadDotEnv(path string) error {
	explicit := true
	if path == "" {
		path = os.Getenv("ENV_FILE")
	}
	if path == "" {
		path = DefaultEnvFile
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
