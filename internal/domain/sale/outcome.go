package sale

// Outcome is the expected, buyer-visible result of a sale operation. Sold out,
// queue full and the like are outcomes, not errors.
type Outcome string

const (
	OutcomeWaiting          Outcome = "waiting"
	OutcomeAlreadyWaiting   Outcome = "already_waiting"
	OutcomeAdmitted         Outcome = "admitted"
	OutcomeNotAdmitted      Outcome = "not_admitted"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeReserved         Outcome = "reserved"
	OutcomeSoldOut          Outcome = "sold_out"
	OutcomeAlreadyReserved  Outcome = "already_reserved"
	OutcomeAlreadyPurchased Outcome = "already_purchased"
	OutcomeExpired          Outcome = "expired"
	OutcomePaymentPending   Outcome = "payment_pending"
	OutcomeDeclined         Outcome = "declined"
	OutcomeConfirmed        Outcome = "confirmed"
	OutcomeQueued           Outcome = "queued"
	OutcomeQueueFull        Outcome = "queue_full"
)

func (o Outcome) String() string {
	return string(o)
}
