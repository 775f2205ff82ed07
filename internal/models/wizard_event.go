package models

import "time"

// Wizard history event types.
const (
	EventPredict        = "PREDICT"
	EventPredictFailed  = "PREDICT_FAILED"
	EventLifespan       = "LIFESPAN"
	EventLifespanFailed = "LIFESPAN_FAILED"
	EventBack           = "BACK"
	EventReset          = "RESET"
)

// WizardEvent is a single history entry.
type WizardEvent struct {
	EventID     string    `json:"event_id"`
	UserID      int       `json:"user_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // PREDICT | PREDICT_FAILED | LIFESPAN | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
