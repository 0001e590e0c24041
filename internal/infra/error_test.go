//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, infra.KindConflict},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindTransient},
		{"connection failure class", &pgconn.PgError{Code: "08006"}, infra.KindTransient},
		{"deadline", context.DeadlineExceeded, infra.KindTransient},
		{"syntax error", &pgconn.PgError{Code: "42601"}, infra.KindDBFailure},
		{"unknown", errors.New("boom"), infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.Classify(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23P01"}

	err := infra.WrapRepoErr("failed to create booking", cause)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsUnavailable(err))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "cause must stay reachable")

	explicit := infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	assert.True(t, infra.IsKind(explicit, infra.KindNotFound))

	transient := infra.WrapRepoErr("failed", context.DeadlineExceeded)
	assert.True(t, infra.IsUnavailable(transient))
}
