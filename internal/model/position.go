package model

import "time"

// Position is a crew role (A1, lighting tech, stagehand).  The sort
// order controls display ordering of assignment lists only and carries
// no business meaning.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – role name (unique).
//  HourlyRate – default hourly rate for the role (nullable).
//  SortOrder  – display ordering weight.
type Position struct {
	ID         uint64    `json:"id"`   // positions.id
	Name       string    `json:"name"` // positions.name
	HourlyRate *float64  `json:"hourly_rate,omitempty"` // positions.hourly_rate (nullable)
	SortOrder  int       `json:"sort_order"` // positions.sort_order
	CreatedAt  time.Time `json:"created_at"` // positions.created_at
	UpdatedAt  time.Time `json:"updated_at"` // positions.updated_at
}
