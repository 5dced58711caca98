package intake

import (
	"context"
	"errors"
	"time"

	"festival-flash-sale/internal/domain/purchase"
	"festival-flash-sale/internal/domain/sale"

	"github.com/cenkalti/backoff/v4"
)

var errQueueFull = errors.New("intake queue full")

// OfferPolicy bounds how long Offer waits for room in a full queue.
type OfferPolicy struct {
	MaxRetries  int
	InitialWait time.Duration
	MaxWait     time.Duration
}

// Queue is a bounded FIFO of purchase intents. It is process-local; each
// instance owns its own.
type Queue struct {
	items  chan purchase.Intent
	policy OfferPolicy
}

func NewQueue(capacity int, policy OfferPolicy) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		items:  make(chan purchase.Intent, capacity),
		policy: policy,
	}
}

// Offer appends item. While the queue is full it retries with exponential
// backoff and gives up with OutcomeQueueFull after MaxRetries.
func (q *Queue) Offer(ctx context.Context, item purchase.Intent) sale.Outcome {
	push := func() error {
		select {
		case q.items <- item:
			return nil
		default:
			return errQueueFull
		}
	}
	if err := backoff.Retry(push, backoff.WithContext(q.backOff(), ctx)); err != nil {
		return sale.OutcomeQueueFull
	}
	return sale.OutcomeQueued
}

func (q *Queue) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = q.policy.InitialWait
	b.MaxInterval = q.policy.MaxWait
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(max(q.policy.MaxRetries, 0)))
}

// PollBatch removes up to n items in insertion order without waiting.
func (q *Queue) PollBatch(n int) []purchase.Intent {
	batch := make([]purchase.Intent, 0, min(n, len(q.items)))
	for len(batch) < n {
		select {
		case item := <-q.items:
			batch = append(batch, item)
		default:
			return batch
		}
	}
	return batch
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Cap() int {
	return cap(q.items)
}
