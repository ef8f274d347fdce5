package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/handler"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/server"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("dashboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	pageCache, err := cache.NewPageCache(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating page cache")
	}
	if closer, ok := pageCache.(io.Closer); ok {
		defer closer.Close()
	}

	services, err := service.NewServices(store.NewStorages(db, log), pageCache, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, pageCache, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
