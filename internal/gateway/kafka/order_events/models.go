package order_events

import "time"

type statusChangedEvent struct {
	OrderID        int64     `json:"order_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}
