package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. nil is returned for
// anything that is not a PostgreSQL error.
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return nil
}

// ClassifyPgError maps Class 23 (integrity constraint violation) codes to
// store sentinels. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Every other code is left unclassified: the caller reports it as an
// unexpected failure and does not retry, since it cannot tell whether the
// statement was applied.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicate
	case pgerrcode.ForeignKeyViolation:
		return ErrInvalidReference
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.IntegrityConstraintViolation:
		return ErrConstraintViolated
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow:
		return ErrConstraintViolated
	}
	return nil
}
