package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/service"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

//go:embed placeholder.json
var placeholderData []byte

type seedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type seedData struct {
	Users     []seedUser        `json:"users"`
	Customers []models.Customer `json:"customers"`
	Invoices  []models.Invoice  `json:"invoices"`
}

func loadSeedData(raw []byte) (seedData, error) {
	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return seedData{}, fmt.Errorf("decode seed data: %w", err)
	}
	return data, nil
}

type idGenerator interface {
	Generate() string
}

// seeder fills an empty database with demo users, customers and invoices.
// Users and customers that already exist are skipped. Invoices are only
// inserted into an empty invoices table.
type seeder struct {
	auth      service.AuthService
	customers store.CustomerRepository
	invoices  store.InvoiceRepository
	ids       idGenerator

	logger *logger.Logger
}

func (s *seeder) seed(ctx context.Context, data seedData) error {
	for _, u := range data.Users {
		_, err := s.auth.RegisterUser(ctx, models.User{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password})
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			s.logger.Info().Str("email", u.Email).Msg("user already exists")
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	for _, c := range data.Customers {
		err := s.customers.Create(ctx, c)
		if errors.Is(err, store.ErrCustomerAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Email, err)
		}
	}

	count, err := s.invoices.CountFiltered(ctx, "")
	if err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int64("invoices", count).Msg("invoices table is not empty, skipping invoices")
		return nil
	}

	for _, inv := range data.Invoices {
		if inv.ID == "" {
			inv.ID = s.ids.Generate()
		}
		if err = s.invoices.Create(ctx, inv); err != nil {
			return fmt.Errorf("seed invoice for customer %s: %w", inv.CustomerID, err)
		}
	}

	s.logger.Info().
		Int("users", len(data.Users)).
		Int("customers", len(data.Customers)).
		Int("invoices", len(data.Invoices)).
		Msg("database seeded")
	return nil
}
