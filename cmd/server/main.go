package main

import (
	"context"
	"fmt"

	"github.com/reut-b/profile-site/internal/config"
	handlerhttp "github.com/reut-b/profile-site/internal/handler/http"
	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/server"
	"github.com/reut-b/profile-site/internal/service"
	"github.com/reut-b/profile-site/internal/session"
	"github.com/reut-b/profile-site/internal/store"
	"github.com/reut-b/profile-site/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("profile-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, log)

	sessions := session.NewMemoryStore(cfg.App.SessionTTL)
	sweeper := session.NewSweeper(sessions, cfg.App.SweepInterval, log)
	workers.NewWorkers(sweeper).Run()
	defer sweeper.Stop()

	handler := handlerhttp.NewHandler(services, sessions, storages.Pictures, cfg.App.SessionCookieName, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
