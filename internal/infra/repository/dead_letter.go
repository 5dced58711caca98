package repository

//go:generate mockgen -source=dead_letter.go -destination=../../../tests/mock/repository/dead_letter.go -package=repositorymock

import (
	"context"
	"errors"
	"log/slog"

	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/infra"
	sqlc "festival-flash-sale/internal/infra/sqlc/generated"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgtype"
)

type DeadLetterWriteQueries interface {
	InsertDeadLetter(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertDeadLetterParams) error
}

// DeadLetterRepository is the permanent-failure log of the intake pipeline.
type DeadLetterRepository struct {
	queries DeadLetterWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewDeadLetterRepository(queries DeadLetterWriteQueries, db sqlc.DBTX, logger *slog.Logger) *DeadLetterRepository {
	return &DeadLetterRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *DeadLetterRepository) Record(ctx context.Context, letter purchase.DeadLetter) error {
	params := sqlc.InsertDeadLetterParams{
		BuyerID:     letter.Intent.BuyerID,
		ResourceID:  letter.Intent.ResourceID,
		StockUnitID: letter.Intent.StockUnitID,
		RequestedAt: pgtype.Timestamptz{Time: letter.Intent.RequestedAt, Valid: true},
		Attempts:    int32(letter.Attempts),
		Reason:      string(letter.Reason),
		Detail:      letter.Detail,
		FailedAt:    pgtype.Timestamptz{Time: letter.FailedAt, Valid: true},
	}
	if err := r.queries.InsertDeadLetter(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to record dead letter",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return nil
}
