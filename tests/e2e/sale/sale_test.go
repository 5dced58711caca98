//go:build e2e

package sale_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/domain/user"
	"festival-flash-sale/internal/handler/dto/request"
	"festival-flash-sale/internal/handler/dto/response"
	"festival-flash-sale/internal/handler/httperr"
	"festival-flash-sale/tests/common/authtest"
	"festival-flash-sale/tests/common/dbtest"
	"festival-flash-sale/tests/common/httptest"
	"festival-flash-sale/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	waitingURL     = "/api/sales/%s/waiting"
	reservationURL = "/api/sales/%s/reservations"
	confirmURL     = "/api/sales/%s/reservations/%s/confirm"
	callbackURL    = "/api/payments/callback"
	stockURL       = "/api/admin/sales/%s/stock"
	advanceURL     = "/api/admin/sales/%s/advance"
	rollbackURL    = "/api/admin/sales/%s/rollback"
)

type SaleSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *SaleSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *SaleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSaleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SaleSuite))
}

// openSale creates a resource whose window contains now and seeds its ledger.
func (s *SaleSuite) openSale(t *testing.T, name string, capacity int64) uuid.UUID {
	t.Helper()

	now := time.Now()
	resourceID := dbtest.CreateTestResource(t, s.DB, name, capacity, now.Add(-time.Minute), now.Add(time.Hour))
	require.NoError(t, s.Scheduler.SyncSaleWindows(context.Background(), now))
	return resourceID
}

func (s *SaleSuite) enqueue(t *testing.T, resourceID uuid.UUID, token string) response.PositionResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(waitingURL, resourceID), nil, token)
	var pos response.PositionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &pos)
	return pos
}

func (s *SaleSuite) advance(t *testing.T, resourceID uuid.UUID, adminToken string) response.AdvanceResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(advanceURL, resourceID), nil, adminToken)
	var adv response.AdvanceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &adv)
	return adv
}

func (s *SaleSuite) stock(t *testing.T, resourceID uuid.UUID, adminToken string) response.StockResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(stockURL, resourceID), nil, adminToken)
	var st response.StockResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &st)
	return st
}

// =============================================================================
// TestPurchaseFlow - waiting room through persisted purchase
// =============================================================================

func (s *SaleSuite) TestPurchaseFlow() {
	s.Run("success: admitted buyer reserves, pays and the purchase is persisted", func() {
		t := s.T()

		resourceID := s.openSale(t, "Main Stage Pass", 3)
		buyerID := uuid.New()
		buyerToken := s.jwt.GenerateToken(t, buyerID, user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		operatorToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)

		pos := s.enqueue(t, resourceID, buyerToken)
		require.Equal(t, sale.OutcomeWaiting.String(), pos.Outcome)
		require.False(t, pos.Admitted)

		adv := s.advance(t, resourceID, adminToken)
		require.Equal(t, int64(1), adv.Admitted)

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(waitingURL, resourceID), nil, buyerToken)
		var ranked response.PositionResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &ranked)
		require.True(t, ranked.Admitted)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, buyerToken)
		var reserved response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)

		expected := &response.ReserveResponse{
			Outcome: sale.OutcomeReserved.String(),
			Reservation: &response.ReservationResponse{
				ResourceID: resourceID,
				Status:     "held",
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "SessionID", "StockUnitID", "ExpiresAt", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &reserved, opts...); diff != "" {
			t.Errorf("Reserve response mismatch (-want +got):\n%s", diff)
		}
		sessionID := reserved.Reservation.SessionID

		st := s.stock(t, resourceID, adminToken)
		require.Equal(t, int64(2), st.Remaining)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, resourceID, sessionID), nil, buyerToken)
		var confirmed response.ConfirmResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusAccepted, &confirmed)
		require.Equal(t, sale.OutcomePaymentPending.String(), confirmed.Outcome)

		approved := true
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, callbackURL, request.PaymentCallbackRequest{
			ResourceID: resourceID,
			SessionID:  sessionID,
			Approved:   &approved,
		}, operatorToken)
		var paid response.OutcomeResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &paid)
		require.Equal(t, sale.OutcomeConfirmed.String(), paid.Outcome)

		require.NoError(t, s.Scheduler.DrainIntake(context.Background(), time.Now()))
		require.Equal(t, 1, dbtest.CountPurchases(t, s.DB, resourceID))
		require.Equal(t, 0, dbtest.CountDeadLetters(t, s.DB, resourceID))

		st = s.stock(t, resourceID, adminToken)
		require.Equal(t, int64(2), st.Remaining, "a sold unit must not return to the pool")
	})

	s.Run("success: declined payment returns the unit to the pool", func() {
		t := s.T()

		resourceID := s.openSale(t, "Camping Upgrade", 1)
		buyerID := uuid.New()
		buyerToken := s.jwt.GenerateToken(t, buyerID, user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)
		operatorToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)

		s.enqueue(t, resourceID, buyerToken)
		s.advance(t, resourceID, adminToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, buyerToken)
		var reserved response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)
		require.True(t, s.stock(t, resourceID, adminToken).SoldOut)

		sessionID := reserved.Reservation.SessionID
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, resourceID, sessionID), nil, buyerToken)
		require.Equal(t, http.StatusAccepted, cw.Code)

		declined := false
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, callbackURL, request.PaymentCallbackRequest{
			ResourceID: resourceID,
			SessionID:  sessionID,
			Approved:   &declined,
			Reason:     "card declined",
		}, operatorToken)
		var paid response.OutcomeResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &paid)
		require.Equal(t, sale.OutcomeDeclined.String(), paid.Outcome)

		st := s.stock(t, resourceID, adminToken)
		require.Equal(t, int64(1), st.Remaining)
		require.False(t, st.SoldOut)

		require.NoError(t, s.Scheduler.DrainIntake(context.Background(), time.Now()))
		require.Equal(t, 0, dbtest.CountPurchases(t, s.DB, resourceID))
	})

	s.Run("error: buyer cannot confirm another buyer's reservation", func() {
		t := s.T()

		resourceID := s.openSale(t, "Backstage Tour", 1)
		ownerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
		otherToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		s.enqueue(t, resourceID, ownerToken)
		s.advance(t, resourceID, adminToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, ownerToken)
		var reserved response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(confirmURL, resourceID, reserved.Reservation.SessionID), nil, otherToken)
		httptest.AssertErrorCode(t, cw, http.StatusForbidden, httperr.CodeNotOwned)
	})
}

// =============================================================================
// TestAdmission - outcomes of the waiting room and the stock counter
// =============================================================================

func (s *SaleSuite) TestAdmission() {
	s.Run("success: buyer not yet admitted cannot reserve", func() {
		t := s.T()

		resourceID := s.openSale(t, "Early Bird", 5)
		buyerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)

		s.enqueue(t, resourceID, buyerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, buyerToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		var res response.ReserveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, sale.OutcomeNotAdmitted.String(), res.Outcome)
		require.NotNil(t, res.Position)
		require.Equal(t, int64(0), res.Position.Rank)
		require.Equal(t, int64(0), res.Position.PassCursor)
	})

	s.Run("success: cursor never admits more buyers than remaining stock", func() {
		t := s.T()

		resourceID := s.openSale(t, "Limited Merch", 2)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		tokens := make([]string, 3)
		for i := range tokens {
			tokens[i] = s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
			s.enqueue(t, resourceID, tokens[i])
		}

		adv := s.advance(t, resourceID, adminToken)
		require.Equal(t, int64(2), adv.Admitted)
		require.Equal(t, int64(2), adv.PassCursor)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(waitingURL, resourceID), nil, tokens[2])
		var pos response.PositionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pos)
		require.False(t, pos.Admitted)
		require.Equal(t, int64(2), pos.Rank)
		require.Equal(t, int64(0), pos.Ahead)

		// a second run admits nobody while the grants are outstanding
		adv = s.advance(t, resourceID, adminToken)
		require.Equal(t, int64(0), adv.Admitted)
	})

	s.Run("success: admitted buyer gets sold out after stock is reset to zero", func() {
		t := s.T()

		resourceID := s.openSale(t, "Artist Meet", 1)
		buyerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		s.enqueue(t, resourceID, buyerToken)
		s.advance(t, resourceID, adminToken)

		capacity := int64(0)
		sw := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(stockURL, resourceID),
			request.SetStockRequest{Capacity: &capacity}, adminToken)
		var st response.StockResponse
		httptest.AssertSuccessResponse(t, sw, http.StatusOK, &st)
		require.True(t, st.SoldOut)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, buyerToken)
		require.Equal(t, http.StatusGone, w.Code)

		var res response.ReserveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, sale.OutcomeSoldOut.String(), res.Outcome)
	})

	s.Run("error: buyer role cannot reach admin endpoints", func() {
		t := s.T()

		resourceID := s.openSale(t, "Guarded", 1)
		buyerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(advanceURL, resourceID), nil, buyerToken)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("error: expired token is rejected", func() {
		t := s.T()

		resourceID := s.openSale(t, "Expired Token", 1)
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(waitingURL, resourceID), nil, token)
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})
}

// =============================================================================
// TestCompensation - admin rollback and the expiry sweep
// =============================================================================

func (s *SaleSuite) TestCompensation() {
	s.Run("success: rollback releases a held reservation", func() {
		t := s.T()

		resourceID := s.openSale(t, "Rollback Pass", 1)
		buyerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		s.enqueue(t, resourceID, buyerToken)
		s.advance(t, resourceID, adminToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID), nil, buyerToken)
		var reserved response.ReserveResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)
		sessionID := reserved.Reservation.SessionID

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rollbackURL, resourceID),
			request.RollbackRequest{SessionIDs: []uuid.UUID{sessionID}}, adminToken)
		var rolled response.RollbackResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &rolled)

		expected := &response.RollbackResponse{Released: []uuid.UUID{sessionID}, Failed: []uuid.UUID{}}
		if diff := cmp.Diff(expected, &rolled); diff != "" {
			t.Errorf("Rollback response mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, int64(1), s.stock(t, resourceID, adminToken).Remaining)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, resourceID, sessionID), nil, buyerToken)
		var confirmed response.ConfirmResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusGone, nil)
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &confirmed))
		require.Equal(t, sale.OutcomeExpired.String(), confirmed.Outcome)
	})

	s.Run("success: sweep releases reservations past their expiry", func() {
		t := s.T()

		resourceID := s.openSale(t, "Short Hold", 1)
		buyerToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleBuyer)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		s.enqueue(t, resourceID, buyerToken)
		s.advance(t, resourceID, adminToken)

		ttl := 1
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reservationURL, resourceID),
			request.ReserveRequest{TTLSeconds: &ttl}, buyerToken)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, int64(0), s.stock(t, resourceID, adminToken).Remaining)

		require.NoError(t, s.Scheduler.Sweep(context.Background(), time.Now().Add(time.Minute)))
		require.Equal(t, int64(1), s.stock(t, resourceID, adminToken).Remaining)
	})
}
