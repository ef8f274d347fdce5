package store

import (
	"context"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// InvoiceRepository persists invoices and answers the read queries of the
// invoices table and the dashboard overview.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice models.Invoice) error
	// Update rewrites customer, amount and status. The date column is left untouched.
	Update(ctx context.Context, invoice models.Invoice) error
	GetByID(ctx context.Context, id string) (models.Invoice, error)
	GetFiltered(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoicesTableRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetLatest(ctx context.Context, limit int) ([]models.LatestInvoice, error)
	GetTotals(ctx context.Context) (models.InvoiceTotals, error)
}

// CustomerRepository persists customers and their aggregated invoice totals.
type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) error
	GetAll(ctx context.Context) ([]models.CustomerField, error)
	GetFiltered(ctx context.Context, query string) ([]models.CustomersTableRow, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
