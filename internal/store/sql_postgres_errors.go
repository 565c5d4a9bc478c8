package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller what to do with a failed database
// operation: give up, or try again.
type ErrorClassification int

const (
	// NonRetryable covers everything that will fail the same way on a second
	// attempt: constraint violations, bad SQL, data errors, and any code the
	// classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient conditions such as dropped connections,
	// serialization failures and deadlock rollbacks.
	Retryable
)

// retryablePgCodes holds the PostgreSQL error codes worth a second attempt.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryablePgCodes = map[string]struct{}{
	// class 08, connection exceptions
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	// class 40, transaction rollback
	pgerrcode.TransactionRollback:        {},
	pgerrcode.SerializationFailure:       {},
	pgerrcode.DeadlockDetected:           {},
	pgerrcode.StatementCompletionUnknown: {},
	// class 57, operator intervention
	pgerrcode.CannotConnectNow: {},
}

// PostgresErrorClassifier implements [ErrorClassificator] over pgx driver
// errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Anything that is not a
// *pgconn.PgError with a known transient code, including nil, comes back
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
