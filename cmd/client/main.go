package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-invoice-dashboard/internal/adapter"
	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("dashboard-client", os.Stderr)

	fs := config.DefaultClientFlagSet()
	cfg, err := config.GetClientConfig(fs, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	dashboard, err := adapter.NewHTTPDashboardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create dashboard adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &commandLine{
		adapter:     dashboard,
		credentials: models.Credentials{Email: cfg.Email, Password: cfg.Password},
		buildInfo:   models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		out:         os.Stdout,
		logger:      log,
	}
	if err = cli.run(ctx, fs.Args()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
