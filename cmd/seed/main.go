// Command seed creates the schema and loads the demo data set into the
// configured database.
package main

import (
	"context"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
)

func main() {
	log := logger.NewLogger("seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	data, err := loadSeedData(placeholderData)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading seed data")
	}

	storages := store.NewStorages(db, log)
	s := &seeder{
		auth:      service.NewAuthService(storages.UserRepository, cfg.App, log),
		customers: storages.CustomerRepository,
		invoices:  storages.InvoiceRepository,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
	if err = s.seed(ctx, data); err != nil {
		log.Fatal().Err(err).Msg("error seeding database")
	}
}
