// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used to
// build a client handle. Values are checked, never rewritten.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Supabase.validate(); err != nil {
		return err
	}

	if cfg.Client.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (s Supabase) validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidSupabaseConfigs)
	}

	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSupabaseConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidSupabaseConfigs)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url must include host", ErrInvalidSupabaseConfigs)
	}

	if strings.TrimSpace(s.AnonKey) == "" {
		return fmt.Errorf("%w: anon key is required", ErrInvalidSupabaseConfigs)
	}

	return nil
}
