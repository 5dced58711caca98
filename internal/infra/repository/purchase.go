package repository

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/repository/purchase.go -package=repositorymock

import (
	"context"
	"errors"
	"log/slog"

	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/infra"
	sqlc "festival-flash-sale/internal/infra/sqlc/generated"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseWriteQueries interface {
	InsertPurchases(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPurchasesParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db sqlc.DBTX, logger *slog.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// SaveBatch inserts the batch in one statement. Rows whose stock unit is
// already purchased are skipped, so the returned count can be lower than
// len(purchases).
func (r *PurchaseRepository) SaveBatch(ctx context.Context, purchases []purchase.Purchase) (int64, error) {
	if len(purchases) == 0 {
		return 0, nil
	}

	n, err := r.queries.InsertPurchases(ctx, r.db, toInsertPurchasesParams(purchases))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to save purchase batch",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return n, nil
}

func toInsertPurchasesParams(purchases []purchase.Purchase) sqlc.InsertPurchasesParams {
	params := sqlc.InsertPurchasesParams{
		Ids:          make([]uuid.UUID, len(purchases)),
		BuyerIds:     make([]uuid.UUID, len(purchases)),
		ResourceIds:  make([]uuid.UUID, len(purchases)),
		StockUnitIds: make([]uuid.UUID, len(purchases)),
		RequestedAts: make([]pgtype.Timestamptz, len(purchases)),
		PurchasedAts: make([]pgtype.Timestamptz, len(purchases)),
	}
	for i, p := range purchases {
		params.Ids[i] = p.ID
		params.BuyerIds[i] = p.BuyerID
		params.ResourceIds[i] = p.ResourceID
		params.StockUnitIds[i] = p.StockUnitID
		params.RequestedAts[i] = pgtype.Timestamptz{Time: p.RequestedAt, Valid: true}
		params.PurchasedAts[i] = pgtype.Timestamptz{Time: p.PurchasedAt, Valid: true}
	}
	return params
}
