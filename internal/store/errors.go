package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same e-mail already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the requested e-mail.
	ErrUserNotFound = errors.New("no user was found")

	// ErrInvoiceNotFound is returned when a read or update targets an invoice
	// id that does not exist.
	ErrInvoiceNotFound = errors.New("invoice was not found")

	// ErrCustomerNotFound is returned when an invoice references a customer
	// that does not exist (foreign key violation on invoices.customer_id).
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrCustomerAlreadyExists is returned when a customer with the same id
	// or e-mail is already stored.
	ErrCustomerAlreadyExists = errors.New("customer already exists")

	// ErrUnsupportedDriver is returned by [NewConnect] for drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
