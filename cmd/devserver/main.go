package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/devserver"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/server"
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

	log := logger.NewLogger("go-sync-devserver")
	cfg, err := config.GetServerConfig()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Dur("request_timeout", cfg.RequestTimeout).
		Dur("token_duration", cfg.TokenDuration).
		Msg("received configs")

	handler := devserver.NewHandler(*cfg, buildInfo, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("%s %s\n", "go-sync-devserver", info)
}
