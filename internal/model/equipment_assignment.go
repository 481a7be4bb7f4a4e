package model

import "time"

// EquipmentAssignment links one equipment item to one event.  At most
// one assignment may exist per (event, equipment) pair; quantity says
// how many units of the item go out on that event.
//
// Fields:
//  ID           – primary key identifier.
//  EventID      – event the item is assigned to.
//  EquipmentID  – equipment item being assigned.
//  Quantity     – number of units (>= 1, defaults to 1).
//  RateOverride – per-assignment rate superseding the item's daily
//                 rate (nullable).
//  Notes        – free-text notes.
//  CreatedBy    – user who created the assignment (nullable).
type EquipmentAssignment struct {
	ID           uint64    `json:"id"`           // equipment_assignments.id
	EventID      uint64    `json:"event_id"`     // equipment_assignments.event_id
	EquipmentID  uint64    `json:"equipment_id"` // equipment_assignments.equipment_id
	Quantity     int       `json:"quantity"`     // equipment_assignments.quantity
	RateOverride *float64  `json:"rate_override,omitempty"` // equipment_assignments.rate_override (nullable)
	Notes        *string   `json:"notes,omitempty"`         // equipment_assignments.notes (nullable)
	CreatedBy    *uint64   `json:"created_by,omitempty"`    // equipment_assignments.created_by (nullable)
	CreatedAt    time.Time `json:"created_at"` // equipment_assignments.created_at
	UpdatedAt    time.Time `json:"updated_at"` // equipment_assignments.updated_at
}

// EquipmentAssignmentDetail enriches an assignment with the item's
// display name, category and default daily rate.
type EquipmentAssignmentDetail struct {
	EquipmentAssignment
	EquipmentName string   `json:"equipment_name"`
	Category      *string  `json:"category,omitempty"`
	DefaultRate   *float64 `json:"default_rate,omitempty"`
}
