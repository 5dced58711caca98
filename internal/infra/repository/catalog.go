package repository

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/repository/catalog.go -package=repositorymock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"festival-flash-sale/internal/infra"
	sqlc "festival-flash-sale/internal/infra/sqlc/generated"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogQueries interface {
	GetResourceCapacity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListPurchasedUnits(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]uuid.UUID, error)
	ListOnSaleResourceIDs(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]uuid.UUID, error)
	ListEndedResourceIDs(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]uuid.UUID, error)
	ListExistingResourceIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]uuid.UUID, error)
}

// CatalogRepository reads sale resources and their durable purchases.
type CatalogRepository struct {
	queries CatalogQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewCatalogRepository(queries CatalogQueries, db sqlc.DBTX, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *CatalogRepository) LoadResourceCapacity(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	capacity, err := r.queries.GetResourceCapacity(ctx, r.db, resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr(r.logger, infra.KindNotFound, "resource not found",
				errs.Wrapf(errs.ErrResourceNotFound, "resource %s", resourceID))
		}
		return 0, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to load resource capacity",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return capacity, nil
}

func (r *CatalogRepository) PurchasedUnits(ctx context.Context, resourceID uuid.UUID) ([]uuid.UUID, error) {
	units, err := r.queries.ListPurchasedUnits(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to list purchased units",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return units, nil
}

// ListOnSale returns resources whose sale window contains now.
func (r *CatalogRepository) ListOnSale(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListOnSaleResourceIDs(ctx, r.db, pgtype.Timestamptz{Time: now, Valid: true})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to list on-sale resources",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return ids, nil
}

func (r *CatalogRepository) ListEnded(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListEndedResourceIDs(ctx, r.db, pgtype.Timestamptz{Time: now, Valid: true})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to list ended resources",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return ids, nil
}

// ExistingResourceIDs returns the subset of ids present in the catalog.
func (r *CatalogRepository) ExistingResourceIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := r.queries.ListExistingResourceIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindFromPg(err), "failed to validate resources",
			errors.Join(errs.ErrDatabaseOperationFailed, err))
	}
	return found, nil
}
