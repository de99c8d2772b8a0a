package supabase

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-supabase-client/internal/logger"
)

const healthPath = "/auth/v1/health"

// Health probes the project's auth service. A nil error means the project
// answered 2xx to a request authenticated with the configured key.
//
// Outcomes are logged to the logger attached to ctx, if any.
func (c *Client) Health(ctx context.Context) error {
	log := logger.FromContextOr(ctx, c.logger)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("apikey", c.anonKey).
		SetHeader("Accept", "application/json").
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg("health probe failed")
		return err
	}

	log.Debug().Dur("took", resp.Time()).Msg("health probe succeeded")
	return nil
}
