//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/alert"
	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/infra/redisstore"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/usecase"
	usecasemock "festival-flash-sale/tests/mock/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var saleStart = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

// saleEnv wires the usecases against an in-memory Redis and gomock
// collaborators.
type saleEnv struct {
	mr           *miniredis.Miniredis
	cfg          config.SaleConfig
	stock        *redisstore.StockStore
	waiting      *redisstore.WaitingRoom
	reservations *redisstore.ReservationStore

	catalog   *usecasemock.MockCapacityCatalog
	alerter   *usecasemock.MockAlerter
	gateway   *usecasemock.MockPaymentGateway
	submitter *usecasemock.MockPurchaseSubmitter

	ledger       usecase.LedgerUseCase
	admission    usecase.AdmissionUseCase
	compensation usecase.CompensationUseCase
	reservation  usecase.ReservationUseCase
	saleWindow   usecase.SaleWindowUseCase
}

func newSaleEnv(t *testing.T) *saleEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), PoolSize: 128})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)

	e := &saleEnv{
		mr:           mr,
		cfg:          cfg.Sale,
		stock:        redisstore.NewStockStore(client, cfg.Redis, logger),
		waiting:      redisstore.NewWaitingRoom(client, cfg.Redis, logger),
		reservations: redisstore.NewReservationStore(client, cfg.Redis, logger),
		catalog:      usecasemock.NewMockCapacityCatalog(ctrl),
		alerter:      usecasemock.NewMockAlerter(ctrl),
		gateway:      usecasemock.NewMockPaymentGateway(ctrl),
		submitter:    usecasemock.NewMockPurchaseSubmitter(ctrl),
	}
	e.ledger = usecase.NewLedgerUseCase(e.stock, e.catalog, e.alerter, logger)
	e.admission = usecase.NewAdmissionUseCase(e.waiting, e.ledger, cfg.Sale, logger)
	e.compensation = usecase.NewCompensationUseCase(e.reservations, e.ledger, logger)
	e.reservation = usecase.NewReservationUseCase(
		e.stock, e.waiting, e.reservations, e.ledger, e.compensation,
		e.gateway, e.submitter, e.alerter, cfg.Sale, logger,
	)
	e.saleWindow = usecase.NewSaleWindowUseCase(e.catalog, e.stock, e.ledger, logger)
	return e
}

// seed opens a sale of capacity units with nothing purchased yet.
func (e *saleEnv) seed(t *testing.T, resourceID uuid.UUID, capacity int64) {
	t.Helper()
	units, err := inventory.AvailableUnits(resourceID, capacity, nil)
	require.NoError(t, err)
	_, _, err = e.stock.Seed(context.Background(), resourceID, capacity, units, true)
	require.NoError(t, err)
}

// admit enqueues buyerID and advances the cursor so the buyer holds a grant.
func (e *saleEnv) admit(t *testing.T, resourceID, buyerID uuid.UUID, now time.Time) {
	t.Helper()
	ctx := context.Background()
	_, err := e.admission.Enqueue(ctx, resourceID, buyerID, now)
	require.NoError(t, err)
	_, err = e.admission.AdvanceCursor(ctx, resourceID, now)
	require.NoError(t, err)
	admitted, err := e.admission.IsAdmitted(ctx, resourceID, buyerID)
	require.NoError(t, err)
	require.True(t, admitted)
}

func (e *saleEnv) remaining(t *testing.T, resourceID uuid.UUID) int64 {
	t.Helper()
	n, err := e.stock.Count(context.Background(), resourceID)
	require.NoError(t, err)
	return n
}

// captureAlerts records every alert raised through the mock alerter.
func (e *saleEnv) captureAlerts() *[]alert.Alert {
	raised := &[]alert.Alert{}
	e.alerter.EXPECT().Raise(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a alert.Alert) error {
			*raised = append(*raised, a)
			return nil
		},
	).AnyTimes()
	return raised
}

func alertKinds(raised []alert.Alert) []alert.Kind {
	kinds := make([]alert.Kind, 0, len(raised))
	for _, a := range raised {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

// assertConserved checks remaining + live reservations + sold units == capacity.
func (e *saleEnv) assertConserved(t *testing.T, resourceID uuid.UUID, capacity int64) {
	t.Helper()
	live, err := e.reservations.LiveCount(context.Background(), resourceID)
	require.NoError(t, err)
	sold, err := e.mr.SMembers(stockKey(resourceID, "sold"))
	if err != nil {
		sold = nil
	}
	require.Equal(t, capacity, e.remaining(t, resourceID)+live+int64(len(sold)),
		"remaining %d live %d sold %d", e.remaining(t, resourceID), live, len(sold))
}

func inventoryRestore(restored bool, remaining, total int64) inventory.Restore {
	return inventory.Restore{Restored: restored, Remaining: remaining, Total: total}
}
