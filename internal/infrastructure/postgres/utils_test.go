package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"error pgconn con código 23505", pgDup, true},
		{"error pgconn envuelto", fmt.Errorf("insert lot: %w", pgDup), true},
		{"código 23505 sólo como texto", errors.New("ERROR: duplicate key (SQLSTATE 23505)"), true},
		{"otro código pgconn", &pgconn.PgError{Code: "23503"}, false},
		{"error ajeno a la base", errors.New("connection refused"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isUniqueViolation(tc.err))
		})
	}
}
