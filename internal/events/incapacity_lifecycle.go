package events

import "time"

const IncapacityLifecycleTopic = "hr.incapacity.lifecycle.v1"

const (
	EventTypeIncapacityCreated       = "incapacity_created"
	EventTypeIncapacityStatusChanged = "incapacity_status_changed"
)

type IncapacityCreatedEvent struct {
	EventType    string    `json:"event_type"`
	IncapacityID string    `json:"incapacity_id"`
	UserID       string    `json:"user_id"`
	PayrollID    string    `json:"payroll_id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type IncapacityStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	IncapacityID string    `json:"incapacity_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
