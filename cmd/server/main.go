package main

import (
	"context"
	"fmt"

	"github.com/hcorbage/corb3d/internal/adapter"
	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/handler"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/server"
	"github.com/hcorbage/corb3d/internal/service"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/internal/workers"
	"github.com/hcorbage/corb3d/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("corb3d-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("session_ttl", cfg.App.SessionTTL).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Msg("received configs")

	if cfg.App.UsesDevSecret() {
		log.Warn().Msg("running with the development session secret; set APP_SESSION_SECRET in production")
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	storages := store.NewStorages(db, log)
	defer storages.Close()

	postal := adapter.NewPostalCodeProvider(cfg.Adapter.PostalCode, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services := service.NewServices(storages, postal, buildInfo, *cfg, log)
	if err = services.AuthService.EnsureMasterAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping master admin")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	sweeper := workers.NewSessionSweeper(storages.Sessions, cfg.App.SessionSweepInterval, log.GetChildLogger())
	workers.NewWorkers(sweeper).Run(workersCtx)

	srv.RunServer()

	stopWorkers()
	<-sweeper.Done()
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
