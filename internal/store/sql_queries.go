package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// dateLayout is the textual form of the invoices.date column. Both drivers
// accept it for DATE parameters.
const dateLayout = time.DateOnly

var (
	invoiceColumns = []string{"id", "customer_id", "amount", "status", "date"}

	invoicesTableColumns = []string{
		"i.id", "c.name", "c.email", "c.image_url", "i.amount", "i.date", "i.status",
	}

	latestInvoiceColumns = []string{
		"i.id", "c.name", "c.email", "c.image_url", "i.amount",
	}

	customersTableColumns = []string{
		"c.id", "c.name", "c.email", "c.image_url",
		"COUNT(i.id) AS total_invoices",
		"COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending",
		"COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS total_paid",
	}
)

// likePattern turns a search query into a case-insensitive substring pattern.
func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

// invoiceSearch matches the query against customer name and email and the
// textual form of amount, date and status.
func invoiceSearch(query string) sq.Or {
	pattern := likePattern(query)
	return sq.Or{
		sq.Like{"LOWER(c.name)": pattern},
		sq.Like{"LOWER(c.email)": pattern},
		sq.Like{"CAST(i.amount AS TEXT)": pattern},
		sq.Like{"CAST(i.date AS TEXT)": pattern},
		sq.Like{"LOWER(i.status)": pattern},
	}
}

func buildCreateInvoiceQuery(b sq.StatementBuilderType, invoice models.Invoice) (string, []any, error) {
	return b.Insert(invoice.TableName()).
		Columns(invoiceColumns...).
		Values(invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date.Format(dateLayout)).
		ToSql()
}

func buildUpdateInvoiceQuery(b sq.StatementBuilderType, invoice models.Invoice) (string, []any, error) {
	return b.Update(invoice.TableName()).
		Set("customer_id", invoice.CustomerID).
		Set("amount", invoice.Amount).
		Set("status", string(invoice.Status)).
		Where(sq.Eq{"id": invoice.ID}).
		ToSql()
}

func buildGetInvoiceByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(invoiceColumns...).
		From(models.Invoice{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFilteredInvoicesQuery(b sq.StatementBuilderType, filter models.InvoiceFilter) (string, []any, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	return b.Select(invoicesTableColumns...).
		From("invoices i").
		Join("customers c ON i.customer_id = c.id").
		Where(invoiceSearch(filter.Query)).
		OrderBy("i.date DESC", "i.id DESC").
		Limit(uint64(models.InvoicesPerPage)).
		Offset(uint64((page - 1) * models.InvoicesPerPage)).
		ToSql()
}

func buildCountFilteredInvoicesQuery(b sq.StatementBuilderType, query string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("invoices i").
		Join("customers c ON i.customer_id = c.id").
		Where(invoiceSearch(query)).
		ToSql()
}

func buildLatestInvoicesQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(latestInvoiceColumns...).
		From("invoices i").
		Join("customers c ON i.customer_id = c.id").
		OrderBy("i.date DESC", "i.id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildInvoiceTotalsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0)",
		"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)",
	).
		From(models.Invoice{}.TableName()).
		ToSql()
}

func buildCreateCustomerQuery(b sq.StatementBuilderType, customer models.Customer) (string, []any, error) {
	return b.Insert(customer.TableName()).
		Columns("id", "name", "email", "image_url").
		Values(customer.ID, customer.Name, customer.Email, customer.ImageURL).
		ToSql()
}

func buildAllCustomersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "name").
		From(models.Customer{}.TableName()).
		OrderBy("name ASC").
		ToSql()
}

func buildFilteredCustomersQuery(b sq.StatementBuilderType, query string) (string, []any, error) {
	pattern := likePattern(query)

	return b.Select(customersTableColumns...).
		From("customers c").
		LeftJoin("invoices i ON c.id = i.customer_id").
		Where(sq.Or{
			sq.Like{"LOWER(c.name)": pattern},
			sq.Like{"LOWER(c.email)": pattern},
		}).
		GroupBy("c.id", "c.name", "c.email", "c.image_url").
		OrderBy("c.name ASC").
		ToSql()
}

func buildCountCustomersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.Customer{}.TableName()).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("id", "name", "email", "password").
		Values(user.ID, user.Name, user.Email, user.Password).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("id", "name", "email", "password").
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}
