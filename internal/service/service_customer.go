package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

type customerService struct {
	customerRepository store.CustomerRepository

	logger *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

// FetchCustomers returns id and name of every customer ordered by name.
func (s *customerService) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	customers, err := s.customerRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customerService.FetchCustomers").Msg("failed to fetch customers")
		return nil, fmt.Errorf("%w: all customers: %w", ErrFetchFailed, err)
	}

	return customers, nil
}

func (s *customerService) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomersTableRow, error) {
	customers, err := s.customerRepository.GetFiltered(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*customerService.FetchFilteredCustomers").
			Str("query", query).
			Msg("failed to fetch customer table")
		return nil, fmt.Errorf("%w: customer table: %w", ErrFetchFailed, err)
	}

	return customers, nil
}
