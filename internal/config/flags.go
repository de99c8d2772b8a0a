package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-url supabase project URL
//	-anon-key supabase anonymous key
//	-schema database schema for the REST sub-client
//	-request-timeout health probe timeout (e.g., "5s")
//	-log-level zerolog level name
//	-c/-config json file path with configs
//	-env-file dotenv file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var url string
	var anonKey string
	var schema string
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string
	var envFilePath string

	fs := flag.NewFlagSet("supabase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&url, "url", "", "Supabase project URL")
	fs.StringVar(&anonKey, "anon-key", "", "Supabase anonymous key")
	fs.StringVar(&schema, "schema", "", "Database schema")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Supabase: Supabase{
			URL:     url,
			AnonKey: anonKey,
			Schema:  schema,
		},
		Client: Client{
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}
