package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSupabaseConfigs indicates a missing or malformed project URL
	// or a missing anonymous key.
	ErrInvalidSupabaseConfigs = errors.New("invalid supabase configuration")
	// ErrInvalidClientConfigs indicates invalid outbound transport settings
	// (for example, a negative request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
