//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"festival-flash-sale/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := errors.New("connection reset")

	err := infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to save purchases", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to save purchases")
}

func TestKindFromPg(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: infra.KindDBFailure},
		{name: "non pg error", err: errors.New("boom"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.KindFromPg(tc.err))
		})
	}
}
