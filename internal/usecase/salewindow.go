package usecase

//go:generate mockgen -source=salewindow.go -destination=../../tests/mock/usecase/salewindow.go -package=usecasemock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SaleWindowUseCase follows the catalog's sale windows: it seeds the ledger
// when a sale opens and archives the shared state once it has ended.
type SaleWindowUseCase interface {
	OnSale(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	OpenDueSales(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	CloseEndedSales(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type saleWindowUseCaseImpl struct {
	catalog CapacityCatalog
	stock   StockStore
	ledger  LedgerUseCase
	logger  *slog.Logger
}

func NewSaleWindowUseCase(catalog CapacityCatalog, stock StockStore, ledger LedgerUseCase, logger *slog.Logger) SaleWindowUseCase {
	return &saleWindowUseCaseImpl{
		catalog: catalog,
		stock:   stock,
		ledger:  ledger,
		logger:  logger,
	}
}

func (s *saleWindowUseCaseImpl) OnSale(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return s.catalog.ListOnSale(ctx, now)
}

// OpenDueSales seeds every on-sale resource that is not seeded yet and
// returns the ones seeded by this call.
func (s *saleWindowUseCaseImpl) OpenDueSales(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := s.catalog.ListOnSale(ctx, now)
	if err != nil {
		return nil, err
	}

	var (
		opened []uuid.UUID
		failed []error
	)
	for _, id := range ids {
		seeded, err := s.ledger.OpenSale(ctx, id)
		if err != nil {
			s.logger.Error("failed to open sale", slog.String("resource_id", id.String()), slog.String("error", err.Error()))
			failed = append(failed, err)
			continue
		}
		if seeded {
			opened = append(opened, id)
		}
	}
	return opened, errors.Join(failed...)
}

// CloseEndedSales archives ended resources that have no live reservation
// left. Resources still holding reservations are retried on the next call.
func (s *saleWindowUseCaseImpl) CloseEndedSales(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ended, err := s.catalog.ListEnded(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(ended) == 0 {
		return nil, nil
	}

	seeded, err := s.stock.Resources(ctx)
	if err != nil {
		return nil, err
	}
	active := make(map[uuid.UUID]struct{}, len(seeded))
	for _, id := range seeded {
		active[id] = struct{}{}
	}

	var (
		closed []uuid.UUID
		failed []error
	)
	for _, id := range ended {
		if _, ok := active[id]; !ok {
			continue
		}
		archived, err := s.ledger.Archive(ctx, id)
		if err != nil {
			s.logger.Error("failed to archive sale", slog.String("resource_id", id.String()), slog.String("error", err.Error()))
			failed = append(failed, err)
			continue
		}
		if archived {
			closed = append(closed, id)
		}
	}
	return closed, errors.Join(failed...)
}
