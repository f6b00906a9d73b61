package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"pupperazi-api/internal/infra"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// classify maps Postgres error codes onto repository error kinds so that the
// use case layer never inspects driver errors directly.
func classify(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
