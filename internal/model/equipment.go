package model

import "time"

// Equipment is an inventory item (console, fixture, case of cable)
// that can be assigned to events.  The daily rate feeds costing with
// the same missing-means-zero rule as crew rates; the replacement cost
// is informational only.
//
// Fields:
//  ID                – primary key identifier.
//  Name              – display name of the item.
//  Category          – free-text category label (audio, lighting, ...).
//  DailyRate         – default daily rental rate (nullable).
//  ReplacementCost   – what it costs to replace the item (nullable).
//  QuantityAvailable – how many units exist in inventory.
//  IsActive          – whether the item can receive new assignments.
type Equipment struct {
	ID                uint64    `json:"id"`   // equipment.id
	Name              string    `json:"name"` // equipment.name
	Category          *string   `json:"category,omitempty"`         // equipment.category (nullable)
	DailyRate         *float64  `json:"daily_rate,omitempty"`       // equipment.daily_rate (nullable)
	ReplacementCost   *float64  `json:"replacement_cost,omitempty"` // equipment.replacement_cost (nullable)
	QuantityAvailable int       `json:"quantity_available"` // equipment.quantity_available
	IsActive          bool      `json:"is_active"`  // equipment.is_active
	CreatedAt         time.Time `json:"created_at"` // equipment.created_at
	UpdatedAt         time.Time `json:"updated_at"` // equipment.updated_at
}
