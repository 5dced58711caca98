package admission

import "festival-flash-sale/internal/domain/sale"

// Position is a buyer's place in a resource's waiting room. Rank is absolute
// within the sale: entries evicted by earlier advances keep the rank they had.
type Position struct {
	Outcome    sale.Outcome
	Rank       int64
	PassCursor int64
}

func NotFound(cursor int64) Position {
	return Position{Outcome: sale.OutcomeNotFound, Rank: -1, PassCursor: cursor}
}

func (p Position) Found() bool {
	return p.Outcome != sale.OutcomeNotFound && p.Rank >= 0
}

// Admitted reports rank < PassCursor.
func (p Position) Admitted() bool {
	return p.Found() && p.Rank < p.PassCursor
}

// Ahead is the number of buyers still in front, zero once admitted.
func (p Position) Ahead() int64 {
	if !p.Found() || p.Admitted() {
		return 0
	}
	return p.Rank - p.PassCursor
}

// Eviction is the waiting room right after entries were moved into grants.
type Eviction struct {
	Admitted   int64
	PassCursor int64
	Waiting    int64
	Enqueued   int64
}

// Overrun reports a pass cursor beyond the number of entries ever enqueued,
// which no sequence of advances can produce.
func (e Eviction) Overrun() bool {
	return e.PassCursor > e.Enqueued
}

// Advance summarizes one AdvanceCursor invocation.
type Advance struct {
	Admittable int64
	Admitted   int64
	PassCursor int64
	Waiting    int64
	Expired    int64
}

// Admittable is max(0, remaining - outstanding).
func Admittable(remaining, outstanding int64) int64 {
	if n := remaining - outstanding; n > 0 {
		return n
	}
	return 0
}
