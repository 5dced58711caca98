//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSaleWindowUseCase_OpenDueSales(t *testing.T) {
	ctx := context.Background()

	t.Run("success: seeds each on-sale resource once", func(t *testing.T) {
		e := newSaleEnv(t)
		first, second := uuid.New(), uuid.New()
		e.catalog.EXPECT().ListOnSale(gomock.Any(), saleStart).Return([]uuid.UUID{first, second}, nil).Times(2)
		e.catalog.EXPECT().LoadResourceCapacity(gomock.Any(), first).Return(int64(3), nil).Times(2)
		e.catalog.EXPECT().LoadResourceCapacity(gomock.Any(), second).Return(int64(5), nil).Times(2)
		e.catalog.EXPECT().PurchasedUnits(gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

		opened, err := e.saleWindow.OpenDueSales(ctx, saleStart)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{first, second}, opened)
		assert.Equal(t, int64(5), e.remaining(t, second))

		opened, err = e.saleWindow.OpenDueSales(ctx, saleStart)
		require.NoError(t, err)
		assert.Empty(t, opened)
	})

	t.Run("error: one failing resource does not block the rest", func(t *testing.T) {
		e := newSaleEnv(t)
		broken, ok := uuid.New(), uuid.New()
		e.catalog.EXPECT().ListOnSale(gomock.Any(), saleStart).Return([]uuid.UUID{broken, ok}, nil)
		e.catalog.EXPECT().LoadResourceCapacity(gomock.Any(), broken).Return(int64(0), errs.ErrResourceNotFound)
		e.catalog.EXPECT().LoadResourceCapacity(gomock.Any(), ok).Return(int64(2), nil)
		e.catalog.EXPECT().PurchasedUnits(gomock.Any(), ok).Return(nil, nil)

		opened, err := e.saleWindow.OpenDueSales(ctx, saleStart)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
		assert.Equal(t, []uuid.UUID{ok}, opened)
	})

	t.Run("error: catalog unavailable", func(t *testing.T) {
		e := newSaleEnv(t)
		e.catalog.EXPECT().ListOnSale(gomock.Any(), saleStart).Return(nil, errs.ErrDatabaseOperationFailed)

		_, err := e.saleWindow.OpenDueSales(ctx, saleStart)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestSaleWindowUseCase_CloseEndedSales(t *testing.T) {
	ctx := context.Background()
	end := saleStart.Add(2 * time.Hour)

	t.Run("success: archives ended sales without live reservations", func(t *testing.T) {
		e := newSaleEnv(t)
		idle, busy, neverSeeded := uuid.New(), uuid.New(), uuid.New()
		e.seed(t, idle, 2)
		e.seed(t, busy, 2)
		e.reserveOne(t, busy, saleStart)
		e.catalog.EXPECT().ListEnded(gomock.Any(), end).Return([]uuid.UUID{idle, busy, neverSeeded}, nil)

		closed, err := e.saleWindow.CloseEndedSales(ctx, end)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{idle}, closed)

		ids, err := e.stock.Resources(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{busy}, ids)
	})

	t.Run("success: nothing ended", func(t *testing.T) {
		e := newSaleEnv(t)
		e.catalog.EXPECT().ListEnded(gomock.Any(), end).Return(nil, nil)

		closed, err := e.saleWindow.CloseEndedSales(ctx, end)
		require.NoError(t, err)
		assert.Empty(t, closed)
	})
}

func TestSaleWindowUseCase_OnSale(t *testing.T) {
	e := newSaleEnv(t)
	ids := []uuid.UUID{uuid.New()}
	e.catalog.EXPECT().ListOnSale(gomock.Any(), saleStart).Return(ids, nil)

	got, err := e.saleWindow.OnSale(context.Background(), saleStart)
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
