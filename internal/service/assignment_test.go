package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/repository"
)

// In-memory fakes for the store interfaces. They reproduce the two
// store behaviors the engine depends on: duplicate (event, resource)
// pairs return ErrConflict and missing rows return the not-found
// sentinels.

type fakeEventStore struct{ events map[uint64]*model.Event }

func (f *fakeEventStore) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return e, nil
}

type fakeCrewMemberStore struct{ members map[uint64]*model.CrewMember }

func (f *fakeCrewMemberStore) GetByID(_ context.Context, id uint64) (*model.CrewMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, repository.ErrCrewMemberNotFound
	}
	return m, nil
}

type fakeEquipmentStore struct{ items map[uint64]*model.Equipment }

func (f *fakeEquipmentStore) GetByID(_ context.Context, id uint64) (*model.Equipment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, repository.ErrEquipmentNotFound
	}
	return e, nil
}

type fakeCrewAssignmentStore struct {
	members map[uint64]*model.CrewMember
	rows    map[uint64]*model.CrewAssignment
	nextID  uint64
}

func newFakeCrewAssignmentStore(members map[uint64]*model.CrewMember) *fakeCrewAssignmentStore {
	return &fakeCrewAssignmentStore{members: members, rows: make(map[uint64]*model.CrewAssignment)}
}

func (f *fakeCrewAssignmentStore) Insert(_ context.Context, a *model.CrewAssignment) error {
	for _, r := range f.rows {
		if r.EventID == a.EventID && r.CrewMemberID == a.CrewMemberID {
			return repository.ErrConflict
		}
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeCrewAssignmentStore) Update(_ context.Context, id uint64, u repository.CrewAssignmentUpdate) error {
	r, ok := f.rows[id]
	if !ok {
		return repository.ErrAssignmentNotFound
	}
	if u.Status.Set {
		r.Status = u.Status.Value
	}
	if u.RateOverride.Set {
		if u.RateOverride.Null {
			r.RateOverride = nil
		} else {
			v := u.RateOverride.Value
			r.RateOverride = &v
		}
	}
	if u.CallTime.Set {
		if u.CallTime.Null {
			r.CallTime = nil
		} else {
			v := u.CallTime.Value
			r.CallTime = &v
		}
	}
	return nil
}

func (f *fakeCrewAssignmentStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrAssignmentNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCrewAssignmentStore) DetailByID(_ context.Context, id uint64) (*model.CrewAssignmentDetail, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrAssignmentNotFound
	}
	d := &model.CrewAssignmentDetail{CrewAssignment: *r}
	if m, ok := f.members[r.CrewMemberID]; ok {
		d.CrewName = m.Name
		d.CrewEmail = m.Email
		d.DefaultRate = m.HourlyRate
	}
	return d, nil
}

func (f *fakeCrewAssignmentStore) ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.CrewAssignmentDetail, error) {
	out := make([]model.CrewAssignmentDetail, 0)
	for id, r := range f.rows {
		if r.EventID != eventID {
			continue
		}
		d, err := f.DetailByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

type fakeEquipmentAssignmentStore struct {
	items  map[uint64]*model.Equipment
	rows   map[uint64]*model.EquipmentAssignment
	nextID uint64
}

func newFakeEquipmentAssignmentStore(items map[uint64]*model.Equipment) *fakeEquipmentAssignmentStore {
	return &fakeEquipmentAssignmentStore{items: items, rows: make(map[uint64]*model.EquipmentAssignment)}
}

func (f *fakeEquipmentAssignmentStore) Insert(_ context.Context, a *model.EquipmentAssignment) error {
	for _, r := range f.rows {
		if r.EventID == a.EventID && r.EquipmentID == a.EquipmentID {
			return repository.ErrConflict
		}
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeEquipmentAssignmentStore) Update(_ context.Context, id uint64, u repository.EquipmentAssignmentUpdate) error {
	r, ok := f.rows[id]
	if !ok {
		return repository.ErrAssignmentNotFound
	}
	if u.Quantity.Set && !u.Quantity.Null {
		r.Quantity = u.Quantity.Value
	}
	return nil
}

func (f *fakeEquipmentAssignmentStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrAssignmentNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeEquipmentAssignmentStore) DetailByID(_ context.Context, id uint64) (*model.EquipmentAssignmentDetail, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrAssignmentNotFound
	}
	d := &model.EquipmentAssignmentDetail{EquipmentAssignment: *r}
	if item, ok := f.items[r.EquipmentID]; ok {
		d.EquipmentName = item.Name
		d.Category = item.Category
		d.DefaultRate = item.DailyRate
	}
	return d, nil
}

func (f *fakeEquipmentAssignmentStore) ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.EquipmentAssignmentDetail, error) {
	out := make([]model.EquipmentAssignmentDetail, 0)
	for id, r := range f.rows {
		if r.EventID != eventID {
			continue
		}
		d, err := f.DetailByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func newTestAssignmentService() (*AssignmentService, *fakeCrewAssignmentStore, *fakeEquipmentAssignmentStore) {
	rate := 50.0
	daily := 25.0
	members := map[uint64]*model.CrewMember{
		1: {ID: 1, Name: "Avery Chen", Email: "avery@example.com", HourlyRate: &rate, IsActive: true},
		2: {ID: 2, Name: "Jordan Silva", Email: "jordan@example.com", IsActive: true},
		3: {ID: 3, Name: "Retired Tech", Email: "retired@example.com", IsActive: false},
	}
	items := map[uint64]*model.Equipment{
		1: {ID: 1, Name: "Digico SD12", DailyRate: &daily, IsActive: true},
		2: {ID: 2, Name: "Broken Hazer", IsActive: false},
	}
	events := map[uint64]*model.Event{
		10: {ID: 10, Name: "Summer Gala", Date: "2026-09-01", Status: "scheduled"},
	}
	crewStore := newFakeCrewAssignmentStore(members)
	equipStore := newFakeEquipmentAssignmentStore(items)
	svc := NewAssignmentService(
		&fakeEventStore{events: events},
		&fakeCrewMemberStore{members: members},
		&fakeEquipmentStore{items: items},
		crewStore,
		equipStore,
	)
	return svc, crewStore, equipStore
}

func TestCreateCrewAssignment(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	d, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 1})
	require.NoError(t, err)
	assert.Equal(t, "pending", d.Status)
	assert.Equal(t, "Avery Chen", d.CrewName)
	require.NotNil(t, d.DefaultRate)
	assert.Equal(t, 50.0, *d.DefaultRate)
}

func TestCreateCrewAssignmentDuplicateConflicts(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	_, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 1})
	require.NoError(t, err)

	_, err = svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 1})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestCreateCrewAssignmentMissingReferences(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	_, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 99, CrewMemberID: 1})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	_, err = svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 99})
	assert.ErrorIs(t, err, repository.ErrCrewMemberNotFound)

	// Inactive members read as missing so stale rosters cannot be
	// booked.
	_, err = svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 3})
	assert.ErrorIs(t, err, repository.ErrCrewMemberNotFound)
}

func TestCreateCrewAssignmentRejectsBadClock(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	bad := "25:99"

	_, err := svc.CreateCrewAssignment(context.Background(), CreateCrewAssignmentInput{
		EventID: 10, CrewMemberID: 1, CallTime: &bad,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCrewAssignment(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	d, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 1})
	require.NoError(t, err)

	t.Run("no fields", func(t *testing.T) {
		_, err := svc.UpdateCrewAssignment(ctx, d.ID, repository.CrewAssignmentUpdate{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("invalid status", func(t *testing.T) {
		u := repository.CrewAssignmentUpdate{Status: repository.OptString{Set: true, Value: "maybe"}}
		_, err := svc.UpdateCrewAssignment(ctx, d.ID, u)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("status change applies", func(t *testing.T) {
		u := repository.CrewAssignmentUpdate{Status: repository.OptString{Set: true, Value: "confirmed"}}
		got, err := svc.UpdateCrewAssignment(ctx, d.ID, u)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		u := repository.CrewAssignmentUpdate{Status: repository.OptString{Set: true, Value: "confirmed"}}
		_, err := svc.UpdateCrewAssignment(ctx, 404, u)
		assert.ErrorIs(t, err, repository.ErrAssignmentNotFound)
	})
}

func TestBulkCreateCrewAssignmentsPartialFailure(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	// Member 2 is already on the event; member 99 does not exist.
	_, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 2})
	require.NoError(t, err)

	res, err := svc.BulkCreateCrewAssignments(ctx, BulkCreateCrewInput{
		EventID:       10,
		CrewMemberIDs: []uint64{1, 2, 99},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Assigned)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, uint64(99), res.Errors[0].CrewMemberID)
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, uint64(1), res.Assignments[0].CrewMemberID)
}

func TestBulkCreateCrewAssignmentsMissingEvent(t *testing.T) {
	svc, _, _ := newTestAssignmentService()

	_, err := svc.BulkCreateCrewAssignments(context.Background(), BulkCreateCrewInput{
		EventID:       99,
		CrewMemberIDs: []uint64{1},
	})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestCreateEquipmentAssignment(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	t.Run("quantity defaults to one", func(t *testing.T) {
		d, err := svc.CreateEquipmentAssignment(ctx, CreateEquipmentAssignmentInput{EventID: 10, EquipmentID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, d.Quantity)
		assert.Equal(t, "Digico SD12", d.EquipmentName)
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		_, err := svc.CreateEquipmentAssignment(ctx, CreateEquipmentAssignmentInput{EventID: 10, EquipmentID: 1})
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		zero := 0
		_, err := svc.CreateEquipmentAssignment(ctx, CreateEquipmentAssignmentInput{
			EventID: 10, EquipmentID: 1, Quantity: &zero,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("inactive item reads as missing", func(t *testing.T) {
		_, err := svc.CreateEquipmentAssignment(ctx, CreateEquipmentAssignmentInput{EventID: 10, EquipmentID: 2})
		assert.ErrorIs(t, err, repository.ErrEquipmentNotFound)
	})
}

func TestUpdateEquipmentAssignment(t *testing.T) {
	svc, _, _ := newTestAssignmentService()
	ctx := context.Background()

	d, err := svc.CreateEquipmentAssignment(ctx, CreateEquipmentAssignmentInput{EventID: 10, EquipmentID: 1})
	require.NoError(t, err)

	_, err = svc.UpdateEquipmentAssignment(ctx, d.ID, repository.EquipmentAssignmentUpdate{})
	assert.ErrorIs(t, err, ErrNoFields)

	u := repository.EquipmentAssignmentUpdate{Quantity: repository.OptInt{Set: true, Value: 0}}
	_, err = svc.UpdateEquipmentAssignment(ctx, d.ID, u)
	assert.ErrorIs(t, err, ErrValidation)

	u = repository.EquipmentAssignmentUpdate{Quantity: repository.OptInt{Set: true, Value: 4}}
	got, err := svc.UpdateEquipmentAssignment(ctx, d.ID, u)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
}

func TestDeleteAssignments(t *testing.T) {
	svc, crewStore, _ := newTestAssignmentService()
	ctx := context.Background()

	d, err := svc.CreateCrewAssignment(ctx, CreateCrewAssignmentInput{EventID: 10, CrewMemberID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCrewAssignment(ctx, d.ID))
	assert.Empty(t, crewStore.rows)
	assert.ErrorIs(t, svc.DeleteCrewAssignment(ctx, d.ID), repository.ErrAssignmentNotFound)
}
