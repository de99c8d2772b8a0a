package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-supabase-client/internal/app"
	"github.com/MKhiriev/go-supabase-client/internal/config"
	"github.com/MKhiriev/go-supabase-client/internal/logger"
	"github.com/MKhiriev/go-supabase-client/internal/supabase"
	"github.com/MKhiriev/go-supabase-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("supabase-check")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	client, err := supabase.New(cfg.Supabase, cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create supabase client")
	}
	if !supabase.SetShared(client) {
		log.Warn().Msg("shared supabase client already initialised; using the existing handle")
	}

	shared, err := supabase.Shared(log)
	if err != nil {
		log.Fatal().Err(err).Msg("get shared supabase client")
	}

	application, err := app.NewApp(shared, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = application.Run(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("supabase check failed")
	}
}
