// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// SignupCompletedEvent is published when a registration succeeds. It
// contains enough information for downstream consumers to log or notify
// without querying the primary database.
type SignupCompletedEvent struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
