package service

import (
	"context"

	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/repository"
)

// The engine depends on these interfaces instead of concrete
// repositories so its logic can be tested against in-memory fakes.
// The repository types in internal/repository satisfy them.

// EventStore reads events.
type EventStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Event, error)
}

// CrewMemberStore reads crew members.
type CrewMemberStore interface {
	GetByID(ctx context.Context, id uint64) (*model.CrewMember, error)
}

// EquipmentStore reads equipment items.
type EquipmentStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Equipment, error)
}

// CrewAssignmentStore persists crew assignments. Insert must return
// repository.ErrConflict for a duplicate (event, member) pair.
type CrewAssignmentStore interface {
	Insert(ctx context.Context, a *model.CrewAssignment) error
	Update(ctx context.Context, id uint64, u repository.CrewAssignmentUpdate) error
	Delete(ctx context.Context, id uint64) error
	DetailByID(ctx context.Context, id uint64) (*model.CrewAssignmentDetail, error)
	ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.CrewAssignmentDetail, error)
}

// EquipmentAssignmentStore persists equipment assignments with the
// same conflict contract as CrewAssignmentStore.
type EquipmentAssignmentStore interface {
	Insert(ctx context.Context, a *model.EquipmentAssignment) error
	Update(ctx context.Context, id uint64, u repository.EquipmentAssignmentUpdate) error
	Delete(ctx context.Context, id uint64) error
	DetailByID(ctx context.Context, id uint64) (*model.EquipmentAssignmentDetail, error)
	ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.EquipmentAssignmentDetail, error)
}

// ReportStore provides the read-only projections behind availability
// and cost reporting.
type ReportStore interface {
	ActiveCrewMembers(ctx context.Context) ([]model.CrewMember, error)
	BookingsInRange(ctx context.Context, start, end string) ([]repository.BookingRow, error)
	EventsFiltered(ctx context.Context, start, end, costCenter *string) ([]model.Event, error)
	CrewCostRowsByEvent(ctx context.Context, eventID uint64) ([]repository.CrewCostRow, error)
	EquipmentCostRowsByEvent(ctx context.Context, eventID uint64) ([]repository.EquipmentCostRow, error)
	CrewCostRowsForEvents(ctx context.Context, eventIDs []uint64) ([]repository.CrewCostRow, error)
	EquipmentCostRowsForEvents(ctx context.Context, eventIDs []uint64) ([]repository.EquipmentCostRow, error)
	ScheduleRows(ctx context.Context, start string, end *string, crewMemberID *uint64) ([]repository.ScheduleRow, error)
}
