package main

import (
	"errors"
	"flag"
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sync-client/internal/client"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewLogger("go-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-sync-client", cfg.App.LogPath)
	if cfg.App.Headless {
		log = logger.NewLogger("go-sync-client")
	}

	log.Debug().
		Str("server", cfg.Adapter.HTTPAddress).
		Str("db", cfg.Storage.DB.DSN).
		Int64("sharing_group_id", cfg.App.SharingGroupID).
		Bool("headless", cfg.App.Headless).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("%s %s\n", "go-sync-client", info)
}
