package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration hits an e-mail
	// that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the transaction does not exist
	// or belongs to another user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnsupportedDriver is returned for a driver name other than
	// postgres and sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Driver error classes produced by [ErrorClassificator] implementations.
var (
	ErrDuplicate          = errors.New("duplicate key")
	ErrInvalidReference   = errors.New("referenced row does not exist")
	ErrConstraintViolated = errors.New("constraint violated")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
