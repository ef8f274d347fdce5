package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// invoiceRepository is the SQL implementation of [InvoiceRepository] over
// the "invoices" table joined with "customers".
type invoiceRepository struct {
	*DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new invoice. Transient failures are retried.
//
// Error handling:
//   - foreign key violation on customer_id → [ErrCustomerNotFound].
//   - any other failure → wrapped [ErrExecutingStatement].
func (r *invoiceRepository) Create(ctx context.Context, invoice models.Invoice) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateInvoiceQuery(r.builder, invoice)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.Create").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, "create invoice", func(ctx context.Context) error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.Create").
			Str("invoice_id", invoice.ID).
			Str("customer_id", invoice.CustomerID).
			Msg("failed to insert invoice")

		if isForeignKeyViolation(err) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update rewrites customer_id, amount and status of an existing invoice.
// Returns [ErrInvoiceNotFound] when no row matches invoice.ID.
func (r *invoiceRepository) Update(ctx context.Context, invoice models.Invoice) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateInvoiceQuery(r.builder, invoice)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.Update").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, "update invoice", func(ctx context.Context) error {
		result, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.Update").
			Str("invoice_id", invoice.ID).
			Msg("failed to update invoice")

		if isForeignKeyViolation(err) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().Str("func", "*invoiceRepository.Update").Str("invoice_id", invoice.ID).Msg("invoice not found")
		return ErrInvoiceNotFound
	}

	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetInvoiceByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetByID").Msg("failed to build query")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var invoice models.Invoice
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetByID").Str("invoice_id", id).Msg("failed to scan invoice row")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return invoice, nil
}

// GetFiltered returns one page of the invoices table, newest first.
func (r *invoiceRepository) GetFiltered(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoicesTableRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFilteredInvoicesQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetFiltered").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetFiltered").
			Str("query", filter.Query).
			Int("page", filter.Page).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invoices := make([]models.InvoicesTableRow, 0, models.InvoicesPerPage)
	for rows.Next() {
		var row models.InvoicesTableRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.ImageURL, &row.Amount, &row.Date, &row.Status); err != nil {
			log.Err(err).Str("func", "*invoiceRepository.GetFiltered").Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		invoices = append(invoices, row)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetFiltered").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return invoices, nil
}

func (r *invoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountFilteredInvoicesQuery(r.builder, query)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CountFiltered").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CountFiltered").Str("query", query).Msg("failed to count invoices")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *invoiceRepository) GetLatest(ctx context.Context, limit int) ([]models.LatestInvoice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestInvoicesQuery(r.builder, limit)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetLatest").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetLatest").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invoices := make([]models.LatestInvoice, 0, limit)
	for rows.Next() {
		var invoice models.LatestInvoice
		if err := rows.Scan(&invoice.ID, &invoice.Name, &invoice.Email, &invoice.ImageURL, &invoice.Amount); err != nil {
			log.Err(err).Str("func", "*invoiceRepository.GetLatest").Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetLatest").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return invoices, nil
}

// GetTotals returns the invoice count and the paid and pending sums in cents.
func (r *invoiceRepository) GetTotals(ctx context.Context) (models.InvoiceTotals, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInvoiceTotalsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetTotals").Msg("failed to build query")
		return models.InvoiceTotals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var totals models.InvoiceTotals
	if err := r.QueryRowContext(ctx, query, args...).Scan(&totals.Count, &totals.Paid, &totals.Pending); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.GetTotals").Msg("failed to read invoice totals")
		return models.InvoiceTotals{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return totals, nil
}
