package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

type dashboardService struct {
	invoiceRepository  store.InvoiceRepository
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

func NewDashboardService(storages *store.Storages, logger *logger.Logger) DashboardService {
	return &dashboardService{
		invoiceRepository:  storages.InvoiceRepository,
		customerRepository: storages.CustomerRepository,
		logger:             logger,
	}
}

// FetchCardData runs the invoice totals and customer count queries in
// parallel and fails if either of them does.
func (s *dashboardService) FetchCardData(ctx context.Context) (models.CardData, error) {
	var (
		totals    models.InvoiceTotals
		customers int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.invoiceRepository.GetTotals(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customerRepository.Count(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardService.FetchCardData").Msg("failed to fetch card data")
		return models.CardData{}, fmt.Errorf("%w: card data: %w", ErrFetchFailed, err)
	}

	return models.CardData{
		NumberOfInvoices:  totals.Count,
		NumberOfCustomers: customers,
		TotalPaid:         totals.Paid,
		TotalPending:      totals.Pending,
	}, nil
}

func (s *dashboardService) FetchDashboardPage(ctx context.Context) (models.DashboardPage, error) {
	var page models.DashboardPage

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards, err := s.FetchCardData(gCtx)
		page.Cards = cards
		return err
	})
	g.Go(func() error {
		latest, err := s.invoiceRepository.GetLatest(gCtx, models.LatestInvoicesLimit)
		if err != nil {
			return fmt.Errorf("%w: latest invoices: %w", ErrFetchFailed, err)
		}
		page.LatestInvoices = latest
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.DashboardPage{}, err
	}

	return page, nil
}
