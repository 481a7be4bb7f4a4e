package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelhart/crewcall/internal/costing"
	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/repository"
)

// AssignmentService validates and executes assignment writes. Each
// operation is a single request-scoped unit of work: it checks that
// the event and resource exist and the resource is active, then lets
// the store's unique key arbitrate duplicates, so two racing creates
// for the same pair resolve correctly without in-process locking.
type AssignmentService struct {
	events         EventStore
	crew           CrewMemberStore
	equipment      EquipmentStore
	crewStore      CrewAssignmentStore
	equipmentStore EquipmentAssignmentStore
}

// NewAssignmentService wires the service to its stores.
func NewAssignmentService(events EventStore, crew CrewMemberStore, equipment EquipmentStore,
	crewStore CrewAssignmentStore, equipmentStore EquipmentAssignmentStore) *AssignmentService {
	return &AssignmentService{
		events:         events,
		crew:           crew,
		equipment:      equipment,
		crewStore:      crewStore,
		equipmentStore: equipmentStore,
	}
}

// CreateCrewAssignmentInput carries the fields of a new crew
// assignment. Nil optional fields are stored as NULL.
type CreateCrewAssignmentInput struct {
	EventID      uint64
	CrewMemberID uint64
	PositionID   *uint64
	CallTime     *string
	EndTime      *string
	RateOverride *float64
	Notes        *string
	CreatedBy    *uint64
}

// CreateCrewAssignment attaches a crew member to an event. It fails
// with repository.ErrEventNotFound or repository.ErrCrewMemberNotFound
// when either side is missing (an inactive member reads as missing),
// and with repository.ErrConflict when the pair is already assigned.
// On success the stored row is returned enriched with display fields.
func (s *AssignmentService) CreateCrewAssignment(ctx context.Context, in CreateCrewAssignmentInput) (*model.CrewAssignmentDetail, error) {
	if _, err := s.events.GetByID(ctx, in.EventID); err != nil {
		return nil, err
	}
	member, err := s.crew.GetByID(ctx, in.CrewMemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, repository.ErrCrewMemberNotFound
	}
	if err := validateClock(in.CallTime, "call_time"); err != nil {
		return nil, err
	}
	if err := validateClock(in.EndTime, "end_time"); err != nil {
		return nil, err
	}
	a := &model.CrewAssignment{
		EventID:      in.EventID,
		CrewMemberID: in.CrewMemberID,
		PositionID:   in.PositionID,
		CallTime:     in.CallTime,
		EndTime:      in.EndTime,
		RateOverride: in.RateOverride,
		Status:       "pending",
		Notes:        in.Notes,
		CreatedBy:    in.CreatedBy,
	}
	if err := s.crewStore.Insert(ctx, a); err != nil {
		return nil, err
	}
	return s.crewStore.DetailByID(ctx, a.ID)
}

// UpdateCrewAssignment applies only the supplied fields. It fails with
// ErrNoFields when nothing was supplied, ErrValidation for an unknown
// status or malformed clock time, and repository.ErrAssignmentNotFound
// when the id matches no row.
func (s *AssignmentService) UpdateCrewAssignment(ctx context.Context, id uint64, u repository.CrewAssignmentUpdate) (*model.CrewAssignmentDetail, error) {
	if u.Empty() {
		return nil, ErrNoFields
	}
	if u.Status.Set {
		if u.Status.Null || !model.CrewAssignmentStatuses[u.Status.Value] {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, u.Status.Value)
		}
	}
	if u.CallTime.Set && !u.CallTime.Null {
		if err := validateClock(&u.CallTime.Value, "call_time"); err != nil {
			return nil, err
		}
	}
	if u.EndTime.Set && !u.EndTime.Null {
		if err := validateClock(&u.EndTime.Value, "end_time"); err != nil {
			return nil, err
		}
	}
	if err := s.crewStore.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.crewStore.DetailByID(ctx, id)
}

// DeleteCrewAssignment removes an assignment by id, leaving the event
// and crew member untouched.
func (s *AssignmentService) DeleteCrewAssignment(ctx context.Context, id uint64) error {
	return s.crewStore.Delete(ctx, id)
}

// ListCrewAssignments returns an event's crew assignments after
// verifying the event exists.
func (s *AssignmentService) ListCrewAssignments(ctx context.Context, eventID uint64) ([]model.CrewAssignmentDetail, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.crewStore.ListDetailsByEvent(ctx, eventID)
}

// BulkCreateCrewInput carries a batch create: one event, many member
// ids, with an optional shared position and call time.
type BulkCreateCrewInput struct {
	EventID       uint64
	CrewMemberIDs []uint64
	PositionID    *uint64
	CallTime      *string
	CreatedBy     *uint64
}

// BulkError attributes a bulk-item failure to the member id that
// caused it.
type BulkError struct {
	CrewMemberID uint64 `json:"crew_member_id"`
	Error        string `json:"error"`
}

// BulkCreateResult is the always-returned outcome of a bulk create.
type BulkCreateResult struct {
	Assigned    int                          `json:"assigned"`
	Skipped     int                          `json:"skipped"`
	Errors      []BulkError                  `json:"errors"`
	Assignments []model.CrewAssignmentDetail `json:"assignments"`
}

// BulkCreateCrewAssignments attempts the single-create path once per
// member id. A duplicate pair is skipped silently, any other failure
// is recorded against its id, and no failure ever aborts the batch:
// the caller always gets a result object covering every input. Only a
// missing event fails the call as a whole, since every item shares it.
func (s *AssignmentService) BulkCreateCrewAssignments(ctx context.Context, in BulkCreateCrewInput) (*BulkCreateResult, error) {
	if _, err := s.events.GetByID(ctx, in.EventID); err != nil {
		return nil, err
	}
	res := &BulkCreateResult{
		Errors:      make([]BulkError, 0),
		Assignments: make([]model.CrewAssignmentDetail, 0, len(in.CrewMemberIDs)),
	}
	for _, memberID := range in.CrewMemberIDs {
		detail, err := s.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{
			EventID:      in.EventID,
			CrewMemberID: memberID,
			PositionID:   in.PositionID,
			CallTime:     in.CallTime,
			CreatedBy:    in.CreatedBy,
		})
		switch {
		case errors.Is(err, repository.ErrConflict):
			res.Skipped++
		case err != nil:
			res.Errors = append(res.Errors, BulkError{CrewMemberID: memberID, Error: err.Error()})
		default:
			res.Assigned++
			res.Assignments = append(res.Assignments, *detail)
		}
	}
	return res, nil
}

// CreateEquipmentAssignmentInput carries the fields of a new equipment
// assignment. A nil quantity defaults to one unit.
type CreateEquipmentAssignmentInput struct {
	EventID      uint64
	EquipmentID  uint64
	Quantity     *int
	RateOverride *float64
	Notes        *string
	CreatedBy    *uint64
}

// CreateEquipmentAssignment attaches an equipment item to an event
// with the same existence, active and conflict rules as the crew path.
func (s *AssignmentService) CreateEquipmentAssignment(ctx context.Context, in CreateEquipmentAssignmentInput) (*model.EquipmentAssignmentDetail, error) {
	if _, err := s.events.GetByID(ctx, in.EventID); err != nil {
		return nil, err
	}
	item, err := s.equipment.GetByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, repository.ErrEquipmentNotFound
	}
	qty := 1
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		qty = *in.Quantity
	}
	a := &model.EquipmentAssignment{
		EventID:      in.EventID,
		EquipmentID:  in.EquipmentID,
		Quantity:     qty,
		RateOverride: in.RateOverride,
		Notes:        in.Notes,
		CreatedBy:    in.CreatedBy,
	}
	if err := s.equipmentStore.Insert(ctx, a); err != nil {
		return nil, err
	}
	return s.equipmentStore.DetailByID(ctx, a.ID)
}

// UpdateEquipmentAssignment applies only the supplied fields.
func (s *AssignmentService) UpdateEquipmentAssignment(ctx context.Context, id uint64, u repository.EquipmentAssignmentUpdate) (*model.EquipmentAssignmentDetail, error) {
	if u.Empty() {
		return nil, ErrNoFields
	}
	if u.Quantity.Set {
		if u.Quantity.Null || u.Quantity.Value < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
	}
	if err := s.equipmentStore.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.equipmentStore.DetailByID(ctx, id)
}

// DeleteEquipmentAssignment removes an assignment by id.
func (s *AssignmentService) DeleteEquipmentAssignment(ctx context.Context, id uint64) error {
	return s.equipmentStore.Delete(ctx, id)
}

// ListEquipmentAssignments returns an event's equipment assignments
// after verifying the event exists.
func (s *AssignmentService) ListEquipmentAssignments(ctx context.Context, eventID uint64) ([]model.EquipmentAssignmentDetail, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.equipmentStore.ListDetailsByEvent(ctx, eventID)
}

// validateClock rejects a non-nil clock string that does not parse as
// HH:MM or HH:MM:SS.
func validateClock(v *string, field string) error {
	if v == nil {
		return nil
	}
	if _, ok := costing.ParseClock(*v); !ok {
		return fmt.Errorf("%w: invalid %s %q", ErrValidation, field, *v)
	}
	return nil
}
