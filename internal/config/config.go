// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	// DefaultRequestTimeout bounds outbound diagnostic requests when
	// CLIENT_REQUEST_TIMEOUT is not set.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "debug"

	// DefaultEnvFile is the dotenv file looked up in the working directory
	// when ENV_FILE is not set. A missing default file is not an error.
	DefaultEnvFile = ".env"

	// VitePrefix is the prefix bundler-based front-ends put on variables
	// exposed to the browser (VITE_SUPABASE_URL, VITE_SUPABASE_ANON_KEY).
	VitePrefix = "VITE_"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from a dotenv file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Supabase holds the project endpoint and the anonymous key.
	Supabase Supabase `envPrefix:"SUPABASE_"`

	// Client holds settings of the outbound diagnostic transport.
	Client Client `envPrefix:"CLIENT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// Supabase holds the two values the client handle is built from, plus
// optional library options.
type Supabase struct {
	// URL is the project endpoint (e.g. "https://xyzcompany.supabase.co").
	// Env: SUPABASE_URL
	URL string `env:"URL"`

	// AnonKey is the public, low-privilege key identifying the application.
	// Env: SUPABASE_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// Schema is the database schema used by the REST sub-client.
	// Empty means the library default.
	// Env: SUPABASE_SCHEMA
	Schema string `env:"SCHEMA"`

	// Headers are extra headers sent with every request, "k:v,k2:v2".
	// Env: SUPABASE_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Client holds settings for requests the module issues itself.
type Client struct {
	// RequestTimeout bounds a single health probe (e.g. "5s").
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources, reading flags from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs is [GetStructuredConfig] with an explicit flag argument list.
func LoadArgs(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDotEnv().
		withViteEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
