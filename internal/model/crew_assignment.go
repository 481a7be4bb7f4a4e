package model

import "time"

// CrewAssignment links one crew member to one event.  At most one
// assignment may exist per (event, crew member) pair; the database
// enforces this with a unique key and the repository maps the
// duplicate-key error to a conflict.
//
// Fields:
//  ID           – primary key identifier.
//  EventID      – event being crewed.
//  CrewMemberID – member assigned to the event.
//  PositionID   – role worked on this event (nullable, may differ from
//                 the member's default position).
//  CallTime     – clock time the member is called in ("15:04:05").
//  EndTime      – clock time the shift ends.  Both times are clock
//                 times with no date component; an end before the call
//                 means the shift crosses midnight.
//  RateOverride – per-assignment rate that supersedes the member's
//                 default hourly rate (nullable).
//  Status       – pending, confirmed, declined, no_show or completed.
//  Notes        – free-text notes.
//  CreatedBy    – user who created the assignment (nullable).
type CrewAssignment struct {
	ID           uint64    `json:"id"`             // crew_assignments.id
	EventID      uint64    `json:"event_id"`       // crew_assignments.event_id
	CrewMemberID uint64    `json:"crew_member_id"` // crew_assignments.crew_member_id
	PositionID   *uint64   `json:"position_id,omitempty"`   // crew_assignments.position_id (nullable)
	CallTime     *string   `json:"call_time,omitempty"`     // crew_assignments.call_time (nullable)
	EndTime      *string   `json:"end_time,omitempty"`      // crew_assignments.end_time (nullable)
	RateOverride *float64  `json:"rate_override,omitempty"` // crew_assignments.rate_override (nullable)
	Status       string    `json:"status"`     // crew_assignments.status
	Notes        *string   `json:"notes,omitempty"`      // crew_assignments.notes (nullable)
	CreatedBy    *uint64   `json:"created_by,omitempty"` // crew_assignments.created_by (nullable)
	CreatedAt    time.Time `json:"created_at"` // crew_assignments.created_at
	UpdatedAt    time.Time `json:"updated_at"` // crew_assignments.updated_at
}

// CrewAssignmentDetail enriches an assignment with the display fields
// a client needs without extra lookups: the member's name and email,
// the position name and the member's default rate (used by costing as
// the fallback when no override is set).
type CrewAssignmentDetail struct {
	CrewAssignment
	CrewName     string   `json:"crew_name"`
	CrewEmail    string   `json:"crew_email"`
	PositionName *string  `json:"position_name,omitempty"`
	DefaultRate  *float64 `json:"default_rate,omitempty"`
}

// CrewAssignmentStatuses enumerates the valid per-assignment statuses.
// An assignment starts as pending and only moves via explicit updates;
// the engine never auto-transitions it.
var CrewAssignmentStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"declined":  true,
	"no_show":   true,
	"completed": true,
}
