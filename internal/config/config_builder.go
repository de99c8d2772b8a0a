package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	flags   *StructuredConfig
	configs []*StructuredConfig
	err     error
}

// newConfigBuilder parses flags eagerly: the dotenv and JSON paths may come
// from them.
func newConfigBuilder(args []string) *configBuilder {
	b := &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}

	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		flags = &StructuredConfig{}
	}
	b.flags = flags

	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(b.flags.EnvFilePath); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

// viteConfig holds the only two values a front-end bundle exposes; other
// VITE_ variables are not read at all.
type viteConfig struct {
	Supabase struct {
		URL     string `env:"URL"`
		AnonKey string `env:"ANON_KEY"`
	} `envPrefix:"SUPABASE_"`
}

func (b *configBuilder) withViteEnv() *configBuilder {
	viteCfg := &viteConfig{}
	if err := parseEnvWithPrefix(viteCfg, VitePrefix); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &StructuredConfig{
		Supabase: Supabase{
			URL:     viteCfg.Supabase.URL,
			AnonKey: viteCfg.Supabase.AnonKey,
		},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, b.flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
