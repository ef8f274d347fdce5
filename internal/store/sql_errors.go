package store

import (
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells withRetry whether a failed write may be retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx.
//
// Connection loss (class 08), rollbacks caused by serialization failures or
// deadlocks (class 40), too many connections (53300) and server restarts
// (57P01, 57P03) are transient. Constraint violations, data exceptions and
// every other code are final.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

var retryablePostgresCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.TooManyConnections:     {},
	pgerrcode.AdminShutdown:          {},
	pgerrcode.CannotConnectNow:       {},
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if _, ok := retryablePostgresCodes[postgresError(err)]; ok {
		return Retryable
	}
	return NonRetryable
}

// isForeignKeyViolation reports whether err is a foreign key violation raised
// by either supported driver.
func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation ||
		sqliteExtendedCode(err) == sqlite3.ErrConstraintForeignKey
}

// isUniqueViolation reports whether err is a unique or primary key violation
// raised by either supported driver.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	code := sqliteExtendedCode(err)
	return code == sqlite3.ErrConstraintUnique || code == sqlite3.ErrConstraintPrimaryKey
}
