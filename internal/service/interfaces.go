package service

import (
	"context"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// InvoiceService implements the invoice form actions and the invoice
// read models of the dashboard.
type InvoiceService interface {
	// CreateInvoice validates form and inserts a new invoice dated today.
	// On success the returned state is empty and the invoice list is
	// revalidated. Otherwise the state describes the failure and the error
	// is ErrInvalidInvoiceForm or wraps ErrPersistenceFailed.
	CreateInvoice(ctx context.Context, form models.InvoiceForm) (models.FormState, error)
	// UpdateInvoice validates form and rewrites customer, amount and status
	// of invoice id. The date is never changed.
	UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) (models.FormState, error)
	// DeleteInvoice always fails with ErrOperationNotImplemented.
	DeleteInvoice(ctx context.Context, id string) error

	FetchFilteredInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoicesTableRow, error)
	FetchInvoicesPages(ctx context.Context, query string) (int, error)
	FetchInvoicesPage(ctx context.Context, filter models.InvoiceFilter) (models.InvoicesPage, error)
	FetchInvoiceByID(ctx context.Context, id string) (models.Invoice, error)
	FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
	FetchEditInvoicePage(ctx context.Context, id string) (models.EditInvoicePage, error)
}

type CustomerService interface {
	FetchCustomers(ctx context.Context) ([]models.CustomerField, error)
	FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomersTableRow, error)
}

type DashboardService interface {
	FetchCardData(ctx context.Context) (models.CardData, error)
	FetchDashboardPage(ctx context.Context) (models.DashboardPage, error)
}

type AuthService interface {
	// Authenticate checks creds for the given provider and issues a
	// session token. It fails only with ErrInvalidCredentials or ErrAuthFailed.
	Authenticate(ctx context.Context, provider string, creds models.Credentials) (models.Token, error)
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// idGenerator issues identifiers for new records.
type idGenerator interface {
	Generate() string
}
