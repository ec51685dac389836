package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
	sqlStateNotNullViolation    = "23502"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueConstraintViolation reports a unique violation, optionally restricted to one constraint.
func isUniqueConstraintViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	if code == sqlStateUniqueViolation {
		return constraint == "" || name == constraint
	}

	// TranslateError may already have replaced the driver error.
	return constraint == "" && errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)

	return code == sqlStateForeignKeyViolation || errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)

	return code == sqlStateCheckViolation || code == sqlStateNotNullViolation ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}
