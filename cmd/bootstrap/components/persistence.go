package components

import (
	"festival-flash-sale/internal/infra/repository"
	sqlc "festival-flash-sale/internal/infra/sqlc/generated"
	"festival-flash-sale/internal/usecase"
	"festival-flash-sale/internal/usecase/intake"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CatalogQueries)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(usecase.CapacityCatalog)),
			fx.As(new(intake.ResourceValidator)),
		),
		// Purchase
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PurchaseWriteQueries)),
		),
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(intake.PurchaseRepository)),
		),
		// DeadLetter
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.DeadLetterWriteQueries)),
		),
		fx.Annotate(
			repository.NewDeadLetterRepository,
			fx.As(new(intake.DeadLetterRecorder)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
