package redisstore

import (
	"context"
	"log/slog"
	"time"

	"festival-flash-sale/internal/domain/admission"
	"festival-flash-sale/internal/domain/sale"
	"festival-flash-sale/internal/infra"
	"festival-flash-sale/internal/pkg/config"
	"festival-flash-sale/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	positionWaiting   = 0
	positionRefreshed = 1
	positionGranted   = 2
	positionReserved  = 3
	positionPurchased = 4
	positionAbsent    = -1
)

// WaitingRoom holds the ranked waiting set, the pass cursor and the grants of
// admitted buyers.
type WaitingRoom struct {
	base
}

func NewWaitingRoom(client redis.UniversalClient, cfg config.RedisConfig, logger *slog.Logger) *WaitingRoom {
	return &WaitingRoom{base: newBase(client, cfg, logger)}
}

// Enqueue adds the buyer at the back of the waiting set. Buyers holding a
// grant, a live reservation or a purchase are reported and left untouched.
func (w *WaitingRoom) Enqueue(ctx context.Context, resourceID, buyerID uuid.UUID, at time.Time) (admission.Position, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	vals, err := enqueueScript.Run(ctx, w.client,
		[]string{k.waiting, k.cursor, k.grants, k.enqueued, k.arrivals, k.buyers, k.bought},
		buyerID.String(), millis(at),
	).Int64Slice()
	if err != nil {
		return admission.Position{}, w.wrap("failed to enqueue buyer", resourceID, err)
	}
	return w.position(vals)
}

func (w *WaitingRoom) Rank(ctx context.Context, resourceID, buyerID uuid.UUID) (admission.Position, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	vals, err := rankScript.Run(ctx, w.client, []string{k.waiting, k.cursor, k.grants}, buyerID.String()).Int64Slice()
	if err != nil {
		return admission.Position{}, w.wrap("failed to read rank", resourceID, err)
	}
	return w.position(vals)
}

func (w *WaitingRoom) position(vals []int64) (admission.Position, error) {
	if len(vals) != 3 {
		return admission.Position{}, infra.WrapRepoErr(w.logger, infra.KindStoreUnavailable, "unexpected position reply", errs.ErrStoreUnavailable)
	}
	p := admission.Position{Rank: vals[1], PassCursor: vals[2]}
	switch vals[0] {
	case positionWaiting:
		p.Outcome = sale.OutcomeWaiting
	case positionRefreshed:
		p.Outcome = sale.OutcomeAlreadyWaiting
	case positionGranted:
		p.Outcome = sale.OutcomeAdmitted
	case positionReserved:
		p.Outcome = sale.OutcomeAlreadyReserved
	case positionPurchased:
		p.Outcome = sale.OutcomeAlreadyPurchased
	case positionAbsent:
		return admission.NotFound(vals[2]), nil
	default:
		return admission.Position{}, infra.WrapRepoErr(w.logger, infra.KindStoreUnavailable, "unknown position state", errs.ErrStoreUnavailable)
	}
	return p, nil
}

// Remove drops the buyer's entry and any grant.
func (w *WaitingRoom) Remove(ctx context.Context, resourceID, buyerID uuid.UUID) error {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	member := buyerID.String()
	_, err := w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, k.waiting, member)
		pipe.HDel(ctx, k.grants, member)
		pipe.ZRem(ctx, k.grantedAt, member)
		return nil
	})
	if err != nil {
		return w.wrap("failed to remove buyer", resourceID, err)
	}
	return nil
}

// ConsumeGrant removes a grant once it has been turned into a reservation.
func (w *WaitingRoom) ConsumeGrant(ctx context.Context, resourceID, buyerID uuid.UUID) error {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	member := buyerID.String()
	_, err := w.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, k.grants, member)
		pipe.ZRem(ctx, k.grantedAt, member)
		return nil
	})
	if err != nil {
		return w.wrap("failed to consume grant", resourceID, err)
	}
	return nil
}

// Admit evicts up to n of the earliest entries into grants and advances the
// pass cursor by the number evicted.
func (w *WaitingRoom) Admit(ctx context.Context, resourceID uuid.UUID, n int64, at time.Time) (admission.Eviction, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	vals, err := advanceScript.Run(ctx, w.client,
		[]string{k.waiting, k.cursor, k.grants, k.grantedAt, k.enqueued},
		n, millis(at),
	).Int64Slice()
	if err != nil {
		return admission.Eviction{}, w.wrap("failed to advance cursor", resourceID, err)
	}
	if len(vals) != 4 {
		return admission.Eviction{}, infra.WrapRepoErr(w.logger, infra.KindStoreUnavailable, "unexpected advance reply", errs.ErrStoreUnavailable)
	}
	return admission.Eviction{
		PassCursor: vals[0],
		Admitted:   vals[1],
		Waiting:    vals[2],
		Enqueued:   vals[3],
	}, nil
}

// ExpireGrants drops grants issued at or before cutoff.
func (w *WaitingRoom) ExpireGrants(ctx context.Context, resourceID uuid.UUID, cutoff time.Time) (int64, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	k := keysFor(resourceID)
	n, err := expireGrantsScript.Run(ctx, w.client, []string{k.grants, k.grantedAt}, millis(cutoff)).Int64()
	if err != nil {
		return 0, w.wrap("failed to expire grants", resourceID, err)
	}
	return n, nil
}

func (w *WaitingRoom) OutstandingGrants(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()

	n, err := w.client.HLen(ctx, keysFor(resourceID).grants).Result()
	if err != nil {
		return 0, w.wrap("failed to count grants", resourceID, err)
	}
	return n, nil
}
