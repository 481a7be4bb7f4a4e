package model

import "time"

// Event represents a scheduled production (a show day, corporate gig,
// load-in, etc.) that crew and equipment are assigned to.  The engine
// never mutates events as part of assignment logic; it reads the date,
// clock times and cost center to compute costs and availability.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name of the event.
//  Date       – calendar date the event takes place ("2006-01-02").
//  StartTime  – optional clock time the event starts ("15:04:05").
//  EndTime    – optional clock time the event ends.
//  LoadIn     – optional load-in clock time.
//  LoadOut    – optional load-out clock time.
//  Venue      – optional venue / location label.
//  CostCenter – free-text label used to group events for reporting.
//  Status     – lifecycle state (scheduled, confirmed, in_progress,
//               completed, cancelled).
//  Notes      – optional free-text notes.
//  CreatedBy  – user who created the event (nullable).
type Event struct {
	ID         uint64    `json:"id"`          // events.id
	Name       string    `json:"name"`        // events.name
	Date       string    `json:"date"`        // events.event_date
	StartTime  *string   `json:"start_time,omitempty"`  // events.start_time (nullable)
	EndTime    *string   `json:"end_time,omitempty"`    // events.end_time (nullable)
	LoadIn     *string   `json:"load_in,omitempty"`     // events.load_in (nullable)
	LoadOut    *string   `json:"load_out,omitempty"`    // events.load_out (nullable)
	Venue      *string   `json:"venue,omitempty"`       // events.venue (nullable)
	CostCenter *string   `json:"cost_center,omitempty"` // events.cost_center (nullable)
	Status     string    `json:"status"`      // events.status
	Notes      *string   `json:"notes,omitempty"`       // events.notes (nullable)
	CreatedBy  *uint64   `json:"created_by,omitempty"`  // events.created_by (nullable)
	CreatedAt  time.Time `json:"created_at"`  // events.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // events.updated_at
}

// EventStatuses enumerates the valid event lifecycle states.  The only
// transition the engine cares about is that cancelled can be entered
// from any state; everything else is owned by the scheduling subsystem.
var EventStatuses = map[string]bool{
	"scheduled":   true,
	"confirmed":   true,
	"in_progress": true,
	"completed":   true,
	"cancelled":   true,
}
