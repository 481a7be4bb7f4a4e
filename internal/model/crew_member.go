package model

import "time"

// CrewMember is a person who can be assigned to events.  The hourly
// rate is the member's default billing rate and may be absent; costing
// treats a missing rate as zero.  Inactive members are excluded from
// new assignments and from availability reports.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name.
//  Email      – contact email (unique).
//  Phone      – optional contact phone.
//  PositionID – default position reference (nullable).
//  HourlyRate – default hourly rate (nullable).
//  IsActive   – whether the member can receive new assignments.
type CrewMember struct {
	ID         uint64    `json:"id"`    // crew_members.id
	Name       string    `json:"name"`  // crew_members.name
	Email      string    `json:"email"` // crew_members.email
	Phone      *string   `json:"phone,omitempty"`       // crew_members.phone (nullable)
	PositionID *uint64   `json:"position_id,omitempty"` // crew_members.position_id (nullable)
	HourlyRate *float64  `json:"hourly_rate,omitempty"` // crew_members.hourly_rate (nullable)
	IsActive   bool      `json:"is_active"`  // crew_members.is_active
	CreatedAt  time.Time `json:"created_at"` // crew_members.created_at
	UpdatedAt  time.Time `json:"updated_at"` // crew_members.updated_at
}
