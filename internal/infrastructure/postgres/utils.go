package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation en PostgreSQL
const uniqueViolationCode = "23505"

// isUniqueViolation indica si err corresponde a una violación de índice único,
// ya sea como *pgconn.PgError o ya envuelto como texto.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return err != nil && strings.Contains(err.Error(), uniqueViolationCode)
}
