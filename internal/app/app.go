package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-supabase-client/internal/logger"
	"github.com/MKhiriev/go-supabase-client/models"
	"github.com/rs/zerolog"
)

type App struct {
	checker   ProjectChecker
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(checker ProjectChecker, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if checker == nil {
		return nil, ErrNilChecker
	}

	return &App{checker: checker, buildInfo: buildInfo, logger: log}, nil
}

// Run probes the project once. The returned error wraps
// [ErrProjectUnhealthy] and the probe's own error.
//
// The run logger is attached to ctx, so the probe logs with the same fields.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("url", a.checker.URL()).
			Str("version", a.buildInfo.BuildVersion())
	})
	ctx = log.WithContext(ctx)

	log.Info().Msg("checking supabase project")

	if err := a.checker.Health(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrProjectUnhealthy, err)
	}

	log.Info().Msg("supabase project is healthy")
	return nil
}
