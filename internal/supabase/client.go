// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package supabase

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-supabase-client/internal/config"
	"github.com/MKhiriev/go-supabase-client/internal/logger"
	"github.com/go-resty/resty/v2"
	storage "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// Client is the configured handle to one Supabase project.
//
// A Client is safe for concurrent use to the extent the wrapped library is;
// this type holds no mutable state of its own.
type Client struct {
	api *supa.Client

	url     string
	anonKey string
	key     KeyInfo

	http *resty.Client

	logger *logger.Logger
}

// New builds a Client from the project URL and anonymous key in
// supabaseCfg. Both values are passed to the library exactly as given.
//
// clientCfg bounds the requests this package issues itself (see
// [Client.Health]). Returns an error wrapping [ErrCreateClient] if the
// library rejects the values.
func New(supabaseCfg config.Supabase, clientCfg config.Client, log *logger.Logger) (*Client, error) {
	api, err := supa.NewClient(supabaseCfg.URL, supabaseCfg.AnonKey, clientOptions(supabaseCfg))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateClient, err)
	}

	timeout := clientCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	c := &Client{
		api:     api,
		url:     supabaseCfg.URL,
		anonKey: supabaseCfg.AnonKey,
		key:     InspectKey(supabaseCfg.AnonKey),
		http: resty.New().
			SetBaseURL(strings.TrimRight(supabaseCfg.URL, "/")).
			SetTimeout(timeout),
		logger: log.WithComponent("supabase"),
	}
	c.warnOnKey(time.Now())

	c.logger.Debug().
		Str("url", c.url).
		Str("key_format", string(c.key.Format)).
		Str("key_role", c.key.Role).
		Msg("supabase client created")

	return c, nil
}

func clientOptions(cfg config.Supabase) *supa.ClientOptions {
	opts := &supa.ClientOptions{Schema: cfg.Schema}
	if len(cfg.Headers) > 0 {
		opts.Headers = make(map[string]string, len(cfg.Headers))
		for k, v := range cfg.Headers {
			opts.Headers[k] = v
		}
	}
	return opts
}

func (c *Client) warnOnKey(now time.Time) {
	if c.key.Privileged() {
		c.logger.Warn().
			Str("key_role", c.key.Role).
			Msg("configured key bypasses row level security; expected an anon key")
	}
	if c.key.Expired(now) {
		c.logger.Warn().
			Time("expires_at", c.key.ExpiresAt).
			Msg("configured key has expired")
	}
}

// URL returns the project URL the handle was built with.
func (c *Client) URL() string {
	return c.url
}

// AnonKey returns the key the handle was built with.
func (c *Client) AnonKey() string {
	return c.anonKey
}

// Key returns the unverified claims of the configured key.
func (c *Client) Key() KeyInfo {
	return c.key
}

// API returns the underlying library handle (From, Rpc, Auth, Functions).
func (c *Client) API() *supa.Client {
	return c.api
}

// Storage returns the storage sub-client.
func (c *Client) Storage() *storage.Client {
	return c.api.Storage
}
