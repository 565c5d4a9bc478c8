package store

import "errors"

// Sentinel errors returned by registry methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAnchorNotFound is returned when an owner has no anchor rows yet.
	ErrAnchorNotFound = errors.New("no anchor found for owner")

	// ErrVersionConflict is returned when an anchor append loses the
	// compare-and-set race: the expected version no longer matches the
	// latest version in the registry.
	ErrVersionConflict = errors.New("anchor version conflict occurred")

	// ErrOwnerAlreadyRegistered is returned when a registration targets an
	// owner address that already has a public key on file.
	ErrOwnerAlreadyRegistered = errors.New("owner already registered")

	// ErrOwnerNotFound is returned when a lookup targets an owner address
	// with no registered public key.
	ErrOwnerNotFound = errors.New("owner was not found")

	// ErrBlobNotFound is returned when no blob exists under the requested
	// content address.
	ErrBlobNotFound = errors.New("blob was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// registry methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan anchor row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan anchor rows")
)
