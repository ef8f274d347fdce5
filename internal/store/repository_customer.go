package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

type customerRepository struct {
	*DB
	logger *logger.Logger
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a customer. Used by the seed tool.
func (r *customerRepository) Create(ctx context.Context, customer models.Customer) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCustomerQuery(r.builder, customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, "create customer", func(ctx context.Context) error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Str("customer_id", customer.ID).Msg("failed to insert customer")
		if isUniqueViolation(err) {
			return ErrCustomerAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetAll returns id and name of every customer ordered by name, the shape
// used by the invoice form select.
func (r *customerRepository) GetAll(ctx context.Context) ([]models.CustomerField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAllCustomersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetAll").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.CustomerField, 0)
	for rows.Next() {
		var customer models.CustomerField
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			log.Err(err).Str("func", "*customerRepository.GetAll").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

// GetFiltered returns customers whose name or email matches query together
// with their invoice count and pending/paid sums.
func (r *customerRepository) GetFiltered(ctx context.Context, query string) ([]models.CustomersTableRow, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildFilteredCustomersQuery(r.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetFiltered").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.GetFiltered").Str("query", query).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.CustomersTableRow, 0)
	for rows.Next() {
		var row models.CustomersTableRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.ImageURL, &row.TotalInvoices, &row.TotalPending, &row.TotalPaid); err != nil {
			log.Err(err).Str("func", "*customerRepository.GetFiltered").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		customers = append(customers, row)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.GetFiltered").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCustomersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*customerRepository.Count").Msg("failed to count customers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
