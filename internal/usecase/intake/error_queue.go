package intake

import (
	"sync"

	"festival-flash-sale/internal/domain/purchase"

	"github.com/google/uuid"
)

// ErrorQueue is the unbounded overflow and retry queue.
type ErrorQueue struct {
	mu    sync.Mutex
	items []purchase.Intent
}

func NewErrorQueue() *ErrorQueue {
	return &ErrorQueue{}
}

func (e *ErrorQueue) Push(items ...purchase.Intent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = append(e.items, items...)
}

// Drain removes up to n items from the head.
func (e *ErrorQueue) Drain(n int) []purchase.Intent {
	e.mu.Lock()
	defer e.mu.Unlock()

	n = min(n, len(e.items))
	out := make([]purchase.Intent, n)
	copy(out, e.items[:n])
	e.items = append(e.items[:0:0], e.items[n:]...)
	return out
}

func (e *ErrorQueue) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// RetryBook counts failed persistence attempts per stock unit.
type RetryBook struct {
	mu       sync.Mutex
	attempts map[uuid.UUID]int
}

func NewRetryBook() *RetryBook {
	return &RetryBook{attempts: make(map[uuid.UUID]int)}
}

// Fail records one more failed attempt and returns the new count.
func (r *RetryBook) Fail(key uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[key]++
	return r.attempts[key]
}

func (r *RetryBook) Attempts(key uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[key]
}

func (r *RetryBook) Clear(key uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, key)
}

func (r *RetryBook) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attempts)
}
