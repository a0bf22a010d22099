package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/insighted-client/internal/adapter"
	"github.com/MKhiriev/insighted-client/internal/client"
	"github.com/MKhiriev/insighted-client/internal/config"
	"github.com/MKhiriev/insighted-client/internal/logger"
	"github.com/MKhiriev/insighted-client/internal/service"
	"github.com/MKhiriev/insighted-client/internal/store"
	"github.com/MKhiriev/insighted-client/internal/tui"
	"github.com/MKhiriev/insighted-client/internal/workers"
	"github.com/MKhiriev/insighted-client/models"
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
	if err != nil {
		logger.NewClientLogger("insighted-client", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("insighted-client", cfg.App.LogLevel)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, backend, cfg.Workers, log)

	ui, err := tui.New(services, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	background := workers.NewWorkers(
		workers.Every(cfg.Workers.RefreshInterval, services.RefreshJob),
	)

	app, err := client.NewApp(services.Sessions, ui, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "InsightEd client stopped:", err)
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
