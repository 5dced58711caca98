package reservation

type Status string

const (
	StatusHeld      Status = "held"
	StatusPaying    Status = "paying"
	StatusReleasing Status = "releasing"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusPaying, StatusReleasing:
		return true
	default:
		return false
	}
}

// Convertible statuses may still become a purchase.
func (s Status) Convertible() bool {
	return s == StatusHeld || s == StatusPaying
}

// Standing is what a resource already records about a buyer. A buyer may
// hold one live reservation and buy one unit per resource.
type Standing int

const (
	StandingNone Standing = iota
	StandingReserved
	StandingPurchased
)

func (s Standing) String() string {
	switch s {
	case StandingReserved:
		return "reserved"
	case StandingPurchased:
		return "purchased"
	default:
		return "none"
	}
}
