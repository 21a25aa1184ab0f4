package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"pg unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "uq_checkins_active_pair"}, true},
		{"pg other code", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped unique violation", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.want {
				t.Errorf("IsUniqueViolation = %v, want %v", got, tc.want)
			}
		})
	}
}
