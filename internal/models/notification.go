package models

import "time"

// Notification kinds.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Notification is a one-shot toast; clients hide it after DismissAfterMs.
type Notification struct {
	ID             string    `json:"id"`
	UserID         int       `json:"user_id"`
	Kind           string    `json:"kind"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	DismissAfterMs int64     `json:"dismiss_after_ms"`
}
