// Package queue defines message payloads exchanged over the message broker.
package queue

// AssignmentCreatedEvent is published when a crew or equipment
// assignment is successfully created. It carries enough information
// for downstream consumers to log, notify, or trigger analytics
// without querying the primary database.
type AssignmentCreatedEvent struct {
	MessageID    string  `json:"message_id"`
	Kind         string  `json:"kind"` // "crew" or "equipment"
	AssignmentID uint64  `json:"assignment_id"`
	EventID      uint64  `json:"event_id"`
	EventName    string  `json:"event_name"`
	EventDate    string  `json:"event_date"`
	ResourceID   uint64  `json:"resource_id"`
	ResourceName string  `json:"resource_name"`
	Position     *string `json:"position,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	CreatedBy    *uint64 `json:"created_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
