package alert

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindNegativeStock     Kind = "negative_stock"
	KindStockIntegrity    Kind = "stock_integrity"
	KindOverCapacity      Kind = "over_capacity"
	KindDeadLetter        Kind = "dead_letter"
	KindDeadLetterLost    Kind = "dead_letter_unrecorded"
	KindCompensationStall Kind = "compensation_stalled"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Alert is an operator notification. RaisedAt is stamped by the publisher
// when left zero.
type Alert struct {
	Kind       Kind           `json:"kind"`
	Severity   Severity       `json:"severity"`
	ResourceID uuid.UUID      `json:"resourceId"`
	Message    string         `json:"message"`
	Detail     map[string]any `json:"detail,omitempty"`
	RaisedAt   time.Time      `json:"raisedAt"`
}

func Critical(kind Kind, resourceID uuid.UUID, message string, detail map[string]any) Alert {
	return Alert{
		Kind:       kind,
		Severity:   SeverityCritical,
		ResourceID: resourceID,
		Message:    message,
		Detail:     detail,
	}
}
