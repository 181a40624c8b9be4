package main

import (
	"context"
	"fmt"

	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/client"
	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/service"
	"github.com/pwdman/pwdman-client/internal/store"
	"github.com/pwdman/pwdman-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pwdman-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Adapter, log)
	ui := tui.New(services, log)

	app := client.NewApp(services, storages, ui, cfg.Workers, log)
	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
