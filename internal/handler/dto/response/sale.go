package response

import (
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/domain/inventory"
	"festival-flash-sale/internal/domain/reservation"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PositionResponse struct {
	Outcome    string `json:"outcome"`
	Rank       int64  `json:"rank"`
	PassCursor int64  `json:"passCursor"`
	Ahead      int64  `json:"ahead"`
	Admitted   bool   `json:"admitted"`
}

type ReservationResponse struct {
	ResourceID  uuid.UUID `json:"resourceId"`
	SessionID   uuid.UUID `json:"sessionId"`
	StockUnitID uuid.UUID `json:"stockUnitId"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReserveResponse struct {
	Outcome     string               `json:"outcome"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Position    *PositionResponse    `json:"position,omitempty"`
}

type ConfirmResponse struct {
	Outcome     string               `json:"outcome"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type OutcomeResponse struct {
	Outcome string `json:"outcome"`
}

type StockResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Total      int64     `json:"total"`
	Remaining  int64     `json:"remaining"`
	SoldOut    bool      `json:"soldOut"`
}

type RollbackResponse struct {
	Released []uuid.UUID `json:"released"`
	Failed   []uuid.UUID `json:"failed"`
}

type AdvanceResponse struct {
	Admittable int64 `json:"admittable"`
	Admitted   int64 `json:"admitted"`
	PassCursor int64 `json:"passCursor"`
	Waiting    int64 `json:"waiting"`
	Expired    int64 `json:"expired"`
}

// copier also fills fields from same-named getters, which covers the
// Reservation accessors and Position.Ahead/Admitted.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(err)
	}
}

func FromPosition(p admission.Position) *PositionResponse {
	var res PositionResponse
	mustCopy(&res, p)
	return &res
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	var res ReservationResponse
	mustCopy(&res, r)
	return &res
}

func FromReserveResult(r usecase.ReserveResult) *ReserveResponse {
	res := &ReserveResponse{
		Outcome:     r.Outcome.String(),
		Reservation: FromReservation(r.Reservation),
	}
	if r.Outcome == sale.OutcomeNotAdmitted {
		res.Position = FromPosition(r.Position)
	}
	return res
}

func FromConfirmResult(r usecase.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		Outcome:     r.Outcome.String(),
		Reservation: FromReservation(r.Reservation),
	}
}

func FromStock(s inventory.Stock) *StockResponse {
	var res StockResponse
	mustCopy(&res, s)
	return &res
}

func FromRollback(r usecase.RollbackResult) *RollbackResponse {
	res := &RollbackResponse{
		Released: make([]uuid.UUID, 0, len(r.Released)),
		Failed:   make([]uuid.UUID, 0, len(r.Failed)),
	}
	res.Released = append(res.Released, r.Released...)
	res.Failed = append(res.Failed, r.Failed...)
	return res
}

func FromAdvance(a admission.Advance) *AdvanceResponse {
	var res AdvanceResponse
	mustCopy(&res, a)
	return &res
}
