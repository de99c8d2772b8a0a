package supabase

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-supabase-client/internal/config"
	"github.com/MKhiriev/go-supabase-client/internal/logger"
)

var (
	sharedOnce sync.Once
	shared     *Client
	sharedErr  error

	// loadConfig is replaced in tests; flags in os.Args belong to the
	// test binary there.
	loadConfig = config.GetStructuredConfig
)

// Shared returns the process-wide handle. The first call loads the
// configuration and builds the handle; every later call returns the same
// handle and the same error.
func Shared(log *logger.Logger) (*Client, error) {
	sharedOnce.Do(func() {
		cfg, err := loadConfig()
		if err != nil {
			sharedErr = fmt.Errorf("load supabase config: %w", err)
			return
		}

		shared, sharedErr = New(cfg.Supabase, cfg.Client, log)
	})

	return shared, sharedErr
}

// SetShared installs c as the process-wide handle. It reports false, and
// changes nothing, if c is nil or the handle has already been initialised.
func SetShared(c *Client) bool {
	if c == nil {
		return false
	}

	installed := false
	sharedOnce.Do(func() {
		shared = c
		installed = true
	})

	return installed
}
