package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-time-keeper/internal/client"
	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-time-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-time-keeper", cfg.App.LogPath)
	log.Info().Str("version", info.BuildVersion()).Str("commit", info.BuildCommit()).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("client close error")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
