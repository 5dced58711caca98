package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"festival-flash-sale/internal/domain/reservation"
	"festival-flash-sale/internal/infra"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	fieldSession   = "session"
	fieldBuyer     = "buyer"
	fieldUnit      = "unit"
	fieldExpiresAt = "expires_at"
	fieldCreatedAt = "created_at"
	fieldStatus    = "status"
)

// ReservationStore keeps one hash per reservation plus a per-resource expiry
// index and a buyer -> session index.
type ReservationStore struct {
	base
}

func NewReservationStore(client redis.UniversalClient, cfg config.RedisConfig, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{base: newBase(client, cfg, logger)}
}

// Create records r. It returns false when the buyer's slot belongs to another
// session.
func (s *ReservationStore) Create(ctx context.Context, r *reservation.Reservation) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(r.ResourceID())
	n, err := createReservationScript.Run(ctx, s.client,
		[]string{k.reservation(r.SessionID()), k.expiry, k.buyers},
		r.SessionID().String(),
		r.BuyerID().String(),
		r.StockUnitID().String(),
		millis(r.ExpiresAt()),
		millis(r.CreatedAt()),
		r.Status().String(),
	).Int64()
	if err != nil {
		return false, s.wrap("failed to create reservation", r.ResourceID(), err)
	}
	return n == 1, nil
}

func (s *ReservationStore) Get(ctx context.Context, resourceID, sessionID uuid.UUID) (*reservation.Reservation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fields, err := s.client.HGetAll(ctx, keysFor(resourceID).reservation(sessionID)).Result()
	if err != nil {
		return nil, s.wrap("failed to read reservation", resourceID, err)
	}
	if len(fields) == 0 {
		return nil, errs.Wrapf(errs.ErrReservationNotFound, "session %s", sessionID)
	}
	return s.decode(resourceID, fields)
}

// ClaimBuyer takes the buyer's single reservation slot for sessionID before
// any unit is claimed. It returns StandingNone when the slot is now held by
// sessionID, otherwise what already occupies it.
func (s *ReservationStore) ClaimBuyer(ctx context.Context, resourceID, buyerID, sessionID uuid.UUID) (reservation.Standing, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	n, err := claimBuyerScript.Run(ctx, s.client, []string{k.buyers, k.bought}, buyerID.String(), sessionID.String()).Int64()
	if err != nil {
		return reservation.StandingNone, s.wrap("failed to claim buyer slot", resourceID, err)
	}
	return reservation.Standing(n), nil
}

// ReleaseBuyer frees a slot claimed by sessionID that never became a reservation.
func (s *ReservationStore) ReleaseBuyer(ctx context.Context, resourceID, buyerID, sessionID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := releaseBuyerScript.Run(ctx, s.client, []string{keysFor(resourceID).buyers}, buyerID.String(), sessionID.String()).Err()
	if err != nil {
		return s.wrap("failed to release buyer slot", resourceID, err)
	}
	return nil
}

func (s *ReservationStore) Standing(ctx context.Context, resourceID, buyerID uuid.UUID) (reservation.Standing, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	n, err := standingScript.Run(ctx, s.client, []string{k.buyers, k.bought}, buyerID.String()).Int64()
	if err != nil {
		return reservation.StandingNone, s.wrap("failed to look up buyer", resourceID, err)
	}
	return reservation.Standing(n), nil
}

// Transition moves the status to `to` when the current status is one of from.
// moved is false when the status did not match; the returned reservation
// always reflects the stored record.
func (s *ReservationStore) Transition(ctx context.Context, resourceID, sessionID uuid.UUID, to reservation.Status, from ...reservation.Status) (*reservation.Reservation, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	args := make([]any, 0, len(from)+1)
	args = append(args, to.String())
	for _, st := range from {
		args = append(args, st.String())
	}

	reply, err := transitionScript.Run(ctx, s.client, []string{keysFor(resourceID).reservation(sessionID)}, args...).Slice()
	if err != nil {
		return nil, false, s.wrap("failed to transition reservation", resourceID, err)
	}
	if len(reply) == 0 {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindStoreUnavailable, "empty transition reply", errs.ErrStoreUnavailable)
	}
	code, _ := reply[0].(int64)
	if code < 0 {
		return nil, false, errs.Wrapf(errs.ErrReservationNotFound, "session %s", sessionID)
	}

	fields, err := pairs(reply[1:])
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindIntegrity, "invalid reservation record", errs.Wrap(errs.ErrStockIntegrity, err.Error()))
	}
	r, err := s.decode(resourceID, fields)
	if err != nil {
		return nil, false, err
	}
	return r, code == 1, nil
}

// Convert removes a held or paying reservation, marks its unit sold and
// records the buyer as a purchaser.
// It returns nil when the reservation is gone or already being released.
func (s *ReservationStore) Convert(ctx context.Context, resourceID, sessionID uuid.UUID) (*reservation.Reservation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	reply, err := convertScript.Run(ctx, s.client,
		[]string{k.reservation(sessionID), k.expiry, k.buyers, k.holders, k.sold, k.bought},
		sessionID.String(),
	).StringSlice()
	if err != nil {
		return nil, s.wrap("failed to convert reservation", resourceID, err)
	}
	if len(reply) == 0 {
		return nil, nil
	}

	fields := make(map[string]string, len(reply)/2)
	for i := 0; i+1 < len(reply); i += 2 {
		fields[reply[i]] = reply[i+1]
	}
	return s.decode(resourceID, fields)
}

func (s *ReservationStore) Delete(ctx context.Context, resourceID, sessionID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	err := deleteReservationScript.Run(ctx, s.client,
		[]string{k.reservation(sessionID), k.expiry, k.buyers},
		sessionID.String(),
	).Err()
	if err != nil {
		return s.wrap("failed to delete reservation", resourceID, err)
	}
	return nil
}

// Expired returns up to limit reservations with expires_at <= now. Index
// entries whose record is already gone are dropped.
func (s *ReservationStore) Expired(ctx context.Context, resourceID uuid.UUID, now time.Time, limit int64) ([]*reservation.Reservation, error) {
	k := keysFor(resourceID)

	sessions, err := func() ([]string, error) {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()
		return s.client.ZRangeByScore(ctx, k.expiry, &redis.ZRangeBy{
			Min:   "-inf",
			Max:   strconv.FormatInt(millis(now), 10),
			Count: limit,
		}).Result()
	}()
	if err != nil {
		return nil, s.wrap("failed to scan expired reservations", resourceID, err)
	}

	ids, err := parseUUIDs(sessions)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIntegrity, "invalid expiry index", errs.Wrap(errs.ErrStockIntegrity, err.Error()))
	}

	expired := make([]*reservation.Reservation, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(ctx, resourceID, id)
		if errors.Is(err, errs.ErrReservationNotFound) {
			if err := s.Delete(ctx, resourceID, id); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		expired = append(expired, r)
	}
	return expired, nil
}

// LiveCount is the number of reservations in the expiry index.
func (s *ReservationStore) LiveCount(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.client.ZCard(ctx, keysFor(resourceID).expiry).Result()
	if err != nil {
		return 0, s.wrap("failed to count reservations", resourceID, err)
	}
	return n, nil
}

func (s *ReservationStore) decode(resourceID uuid.UUID, fields map[string]string) (*reservation.Reservation, error) {
	r, err := decodeReservation(resourceID, fields)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIntegrity, "invalid reservation record", errs.Wrap(errs.ErrStockIntegrity, err.Error()))
	}
	return r, nil
}

func decodeReservation(resourceID uuid.UUID, fields map[string]string) (*reservation.Reservation, error) {
	ids := make(map[string]uuid.UUID, 3)
	for _, f := range []string{fieldSession, fieldBuyer, fieldUnit} {
		id, err := uuid.Parse(fields[f])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		ids[f] = id
	}
	times := make(map[string]time.Time, 2)
	for _, f := range []string{fieldExpiresAt, fieldCreatedAt} {
		ms, err := strconv.ParseInt(fields[f], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		times[f] = time.UnixMilli(ms)
	}
	return reservation.ReconstructReservation(
		resourceID, ids[fieldBuyer], ids[fieldSession], ids[fieldUnit],
		reservation.Status(fields[fieldStatus]),
		times[fieldExpiresAt], times[fieldCreatedAt],
	)
}

func pairs(values []any) (map[string]string, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("odd field count %d", len(values))
	}
	out := make(map[string]string, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		field, ok1 := values[i].(string)
		value, ok2 := values[i+1].(string)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("non-string field at %d", i)
		}
		out[field] = value
	}
	return out, nil
}
