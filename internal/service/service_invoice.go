package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-invoice-dashboard/internal/app"
	"github.com/MKhiriev/go-invoice-dashboard/internal/cache"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/internal/store"
	"github.com/MKhiriev/go-invoice-dashboard/internal/utils"
	"github.com/MKhiriev/go-invoice-dashboard/internal/validators"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// InvoicesPath is the logical path of the invoice list. Every successful
// mutation revalidates it.
const InvoicesPath = "/dashboard/invoices"

type invoiceService struct {
	invoiceRepository  store.InvoiceRepository
	customerRepository store.CustomerRepository
	pageCache          cache.PageCache

	createValidator validators.FormValidator
	updateValidator validators.FormValidator

	idGenerator idGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewInvoiceService(storages *store.Storages, pageCache cache.PageCache, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository:  storages.InvoiceRepository,
		customerRepository: storages.CustomerRepository,
		pageCache:          pageCache,
		createValidator:    validators.NewInvoiceFormValidator(validators.MsgCreateInvoiceFailed),
		updateValidator:    validators.NewInvoiceFormValidator(validators.MsgUpdateInvoiceFailed),
		idGenerator:        utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, form models.InvoiceForm) (models.FormState, error) {
	log := logger.FromContext(ctx)

	result := s.createValidator.ValidateInvoiceForm(form)
	if !result.Valid() {
		log.Debug().
			Str("func", "*invoiceService.CreateInvoice").
			Any("errors", result.Errors).
			Msg("invoice form rejected")
		return result.State(), ErrInvalidInvoiceForm
	}

	invoice := models.Invoice{
		ID:         s.idGenerator.Generate(),
		CustomerID: result.Data.CustomerID,
		Amount:     AmountInCents(result.Data.Amount),
		Status:     result.Data.Status,
		Date:       today(s.now()),
	}

	if err := s.invoiceRepository.Create(ctx, invoice); err != nil {
		log.Err(err).
			Str("func", "*invoiceService.CreateInvoice").
			Str("invoice_id", invoice.ID).
			Msg("failed to create invoice")
		return persistenceFailure(err, result.Data, validators.MsgCreateInvoiceFailed, app.MsgDatabaseCreateInvoiceFailed)
	}

	log.Info().Str("func", "*invoiceService.CreateInvoice").Str("invoice_id", invoice.ID).Msg("invoice created")
	s.revalidate(ctx)

	return models.FormState{}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, form models.InvoiceForm) (models.FormState, error) {
	log := logger.FromContext(ctx)

	result := s.updateValidator.ValidateInvoiceForm(form)
	if !result.Valid() {
		log.Debug().
			Str("func", "*invoiceService.UpdateInvoice").
			Str("invoice_id", id).
			Any("errors", result.Errors).
			Msg("invoice form rejected")
		return result.State(), ErrInvalidInvoiceForm
	}

	invoice := models.Invoice{
		ID:         id,
		CustomerID: result.Data.CustomerID,
		Amount:     AmountInCents(result.Data.Amount),
		Status:     result.Data.Status,
	}

	err := s.invoiceRepository.Update(ctx, invoice)
	if errors.Is(err, store.ErrInvoiceNotFound) {
		return models.FormState{Message: app.MsgInvoiceNotFound}, ErrInvoiceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceService.UpdateInvoice").
			Str("invoice_id", id).
			Msg("failed to update invoice")
		return persistenceFailure(err, result.Data, validators.MsgUpdateInvoiceFailed, app.MsgDatabaseUpdateInvoiceFailed)
	}

	log.Info().Str("func", "*invoiceService.UpdateInvoice").Str("invoice_id", id).Msg("invoice updated")
	s.revalidate(ctx)

	return models.FormState{}, nil
}

// DeleteInvoice is declared for the delete button but refuses to run
// before touching the store.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	logger.FromContext(ctx).Warn().
		Str("func", "*invoiceService.DeleteInvoice").
		Str("invoice_id", id).
		Msg("delete invoice is not implemented")

	return ErrOperationNotImplemented
}

func (s *invoiceService) FetchFilteredInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.InvoicesTableRow, error) {
	invoices, err := s.invoiceRepository.GetFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: invoices: %w", ErrFetchFailed, err)
	}

	return invoices, nil
}

// FetchInvoicesPages returns the number of table pages matching query.
func (s *invoiceService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.invoiceRepository.CountFiltered(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%w: number of invoices: %w", ErrFetchFailed, err)
	}

	return TotalPages(count), nil
}

// FetchInvoicesPage loads one page of the invoice table and the page count
// concurrently.
func (s *invoiceService) FetchInvoicesPage(ctx context.Context, filter models.InvoiceFilter) (models.InvoicesPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	page := models.InvoicesPage{Query: filter.Query, CurrentPage: filter.Page}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoices, err := s.FetchFilteredInvoices(gCtx, filter)
		page.Invoices = invoices
		return err
	})
	g.Go(func() error {
		totalPages, err := s.FetchInvoicesPages(gCtx, filter.Query)
		page.TotalPages = totalPages
		return err
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*invoiceService.FetchInvoicesPage").Msg("failed to load invoices page")
		return models.InvoicesPage{}, err
	}

	return page, nil
}

func (s *invoiceService) FetchInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	invoice, err := s.invoiceRepository.GetByID(ctx, id)
	if errors.Is(err, store.ErrInvoiceNotFound) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%w: invoice: %w", ErrFetchFailed, err)
	}

	return invoice, nil
}

func (s *invoiceService) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	invoices, err := s.invoiceRepository.GetLatest(ctx, models.LatestInvoicesLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: latest invoices: %w", ErrFetchFailed, err)
	}

	return invoices, nil
}

// FetchEditInvoicePage loads the invoice and the customer select options
// concurrently.
func (s *invoiceService) FetchEditInvoicePage(ctx context.Context, id string) (models.EditInvoicePage, error) {
	var page models.EditInvoicePage

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoice, err := s.FetchInvoiceByID(gCtx, id)
		page.Invoice = invoice
		return err
	})
	g.Go(func() error {
		customers, err := s.customerRepository.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("%w: customers: %w", ErrFetchFailed, err)
		}
		page.Customers = customers
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.EditInvoicePage{}, err
	}

	return page, nil
}

func (s *invoiceService) revalidate(ctx context.Context) {
	if s.pageCache == nil {
		return
	}

	if err := s.pageCache.Revalidate(ctx, InvoicesPath); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*invoiceService.revalidate").
			Str("path", InvoicesPath).
			Msg("failed to revalidate invoices page")
	}
}

// persistenceFailure turns a store error into the form state returned to
// the user. An unknown customer is reported on the customerId field; every
// other failure keeps all submitted values and reports a database error.
func persistenceFailure(err error, data models.InvoiceFields, formMessage, dbMessage string) (models.FormState, error) {
	amount, status := data.Amount, data.Status

	if errors.Is(err, store.ErrCustomerNotFound) {
		errs := models.FieldErrors{}
		errs.Add(models.FieldCustomerID, validators.MsgSelectCustomer)
		return models.FormState{
			Errors:        errs,
			ValidatedData: &models.PartialInvoiceFields{Amount: &amount, Status: &status},
			Message:       formMessage,
		}, ErrInvalidInvoiceForm
	}

	customerID := data.CustomerID
	return models.FormState{
		ValidatedData: &models.PartialInvoiceFields{CustomerID: &customerID, Amount: &amount, Status: &status},
		Message:       dbMessage,
	}, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
}

// AmountInCents converts a decimal amount to integer cents, rounding half
// away from zero. Results outside the int64 range saturate.
func AmountInCents(amount float64) int64 {
	cents := math.Round(amount * 100)
	switch {
	case cents >= math.MaxInt64:
		return math.MaxInt64
	case cents <= math.MinInt64:
		return math.MinInt64
	}
	return int64(cents)
}

// TotalPages returns the number of invoice table pages needed for count rows.
func TotalPages(count int64) int {
	return int((count + models.InvoicesPerPage - 1) / models.InvoicesPerPage)
}

// today truncates t to its UTC calendar date.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
