package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/repository"
)

type fakeReportStore struct {
	members   []model.CrewMember
	bookings  []repository.BookingRow
	events    []model.Event
	crewRows  []repository.CrewCostRow
	equipRows []repository.EquipmentCostRow
	schedule  []repository.ScheduleRow

	scheduleStart string
}

func (f *fakeReportStore) ActiveCrewMembers(_ context.Context) ([]model.CrewMember, error) {
	return f.members, nil
}

func (f *fakeReportStore) BookingsInRange(_ context.Context, _, _ string) ([]repository.BookingRow, error) {
	return f.bookings, nil
}

func (f *fakeReportStore) EventsFiltered(_ context.Context, _, _, _ *string) ([]model.Event, error) {
	return f.events, nil
}

func (f *fakeReportStore) CrewCostRowsByEvent(_ context.Context, eventID uint64) ([]repository.CrewCostRow, error) {
	out := make([]repository.CrewCostRow, 0)
	for _, r := range f.crewRows {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) EquipmentCostRowsByEvent(_ context.Context, eventID uint64) ([]repository.EquipmentCostRow, error) {
	out := make([]repository.EquipmentCostRow, 0)
	for _, r := range f.equipRows {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) CrewCostRowsForEvents(_ context.Context, _ []uint64) ([]repository.CrewCostRow, error) {
	return f.crewRows, nil
}

func (f *fakeReportStore) EquipmentCostRowsForEvents(_ context.Context, _ []uint64) ([]repository.EquipmentCostRow, error) {
	return f.equipRows, nil
}

func (f *fakeReportStore) ScheduleRows(_ context.Context, start string, _ *string, _ *uint64) ([]repository.ScheduleRow, error) {
	f.scheduleStart = start
	return f.schedule, nil
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func TestCrewAvailabilityIncludesFreeMembers(t *testing.T) {
	store := &fakeReportStore{
		members: []model.CrewMember{
			{ID: 1, Name: "Avery Chen", IsActive: true},
			{ID: 2, Name: "Jordan Silva", IsActive: true},
		},
		bookings: []repository.BookingRow{
			{CrewMemberID: 1, EventDate: "2026-09-01", EventName: "Summer Gala"},
			{CrewMemberID: 1, EventDate: "2026-09-03", EventName: "Load Out"},
		},
	}
	svc := NewReportService(store, &fakeEventStore{})

	got, err := svc.CrewAvailability(context.Background(), "2026-09-01", "2026-09-07")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Avery Chen", got[0].Name)
	require.Len(t, got[0].Assignments, 2)
	assert.Equal(t, "2026-09-01", got[0].Assignments[0].Date)

	// A fully free member still appears, with an empty (not nil)
	// slot list.
	assert.Equal(t, "Jordan Silva", got[1].Name)
	assert.NotNil(t, got[1].Assignments)
	assert.Empty(t, got[1].Assignments)
}

func TestEventCostSummary(t *testing.T) {
	store := &fakeReportStore{
		crewRows: []repository.CrewCostRow{
			// 50/h from 22:00 to 02:00 crosses midnight: 4 hours.
			{EventID: 10, DefaultRate: f64(50), CallTime: str("22:00"), EndTime: str("02:00")},
			// No times: flat default shift at the 60/h override.
			{EventID: 10, RateOverride: f64(60), DefaultRate: f64(50)},
		},
		equipRows: []repository.EquipmentCostRow{
			{EventID: 10, DailyRate: f64(25), Quantity: 3},
		},
	}
	events := &fakeEventStore{events: map[uint64]*model.Event{
		10: {ID: 10, Name: "Summer Gala", Date: "2026-09-01"},
	}}
	svc := NewReportService(store, events)

	got, err := svc.EventCostSummary(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CrewCount)
	assert.Equal(t, 1, got.EquipmentCount)
	assert.InDelta(t, 200+480, got.CrewCost, 1e-9)
	assert.InDelta(t, 75, got.EquipmentCost, 1e-9)
	assert.InDelta(t, 755, got.TotalCost, 1e-9)

	_, err = svc.EventCostSummary(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestCostReportBucketsByCostCenter(t *testing.T) {
	store := &fakeReportStore{
		events: []model.Event{
			{ID: 10, Name: "Summer Gala", Date: "2026-09-01", CostCenter: str("Corporate")},
			{ID: 11, Name: "Street Fair", Date: "2026-09-02"},
		},
		crewRows: []repository.CrewCostRow{
			// The roll-up always bills a flat default shift, even with
			// times recorded.
			{EventID: 10, DefaultRate: f64(50), CallTime: str("22:00"), EndTime: str("02:00")},
			{EventID: 11, RateOverride: f64(30)},
		},
		equipRows: []repository.EquipmentCostRow{
			{EventID: 11, DailyRate: f64(25), Quantity: 2},
		},
	}
	svc := NewReportService(store, &fakeEventStore{})

	got, err := svc.CostReport(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EventCount)
	require.Len(t, got.CostCenters, 2)

	corp := got.CostCenters["Corporate"]
	require.NotNil(t, corp)
	assert.InDelta(t, 400, corp.Totals.Crew, 1e-9)
	assert.InDelta(t, 400, corp.Totals.Total, 1e-9)

	unassigned := got.CostCenters[UnassignedCostCenter]
	require.NotNil(t, unassigned)
	assert.InDelta(t, 240, unassigned.Totals.Crew, 1e-9)
	assert.InDelta(t, 50, unassigned.Totals.Equipment, 1e-9)
	assert.InDelta(t, 290, unassigned.Totals.Total, 1e-9)

	var sum float64
	for _, bucket := range got.CostCenters {
		sum += bucket.Totals.Total
	}
	assert.InDelta(t, sum, got.GrandTotal, 1e-9)
}

func TestCostReportEmptyRange(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, &fakeEventStore{})

	got, err := svc.CostReport(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, got.EventCount)
	assert.Zero(t, got.GrandTotal)
	assert.Empty(t, got.CostCenters)
}

func TestCrewScheduleReportGroupsByMember(t *testing.T) {
	store := &fakeReportStore{
		schedule: []repository.ScheduleRow{
			{CrewMemberID: 1, CrewName: "Avery Chen", EventID: 10, EventName: "Summer Gala", EventDate: "2026-09-01", Status: "confirmed"},
			{CrewMemberID: 1, CrewName: "Avery Chen", EventID: 11, EventName: "Street Fair", EventDate: "2026-09-02", Status: "pending"},
			{CrewMemberID: 2, CrewName: "Jordan Silva", EventID: 10, EventName: "Summer Gala", EventDate: "2026-09-01", Status: "pending"},
		},
	}
	svc := NewReportService(store, &fakeEventStore{})
	svc.now = func() time.Time {
		return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	}

	got, err := svc.CrewScheduleReport(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	// With no explicit start the window opens at today (UTC).
	assert.Equal(t, "2026-08-23", store.scheduleStart)

	require.Len(t, got, 2)
	assert.Equal(t, "Avery Chen", got[0].CrewName)
	require.Len(t, got[0].Items, 2)
	assert.Equal(t, "Summer Gala", got[0].Items[0].EventName)
	assert.Equal(t, "Jordan Silva", got[1].CrewName)
	require.Len(t, got[1].Items, 1)
}

func TestCrewScheduleReportSameNameMembersStayDistinct(t *testing.T) {
	// Two different members sharing a name sort adjacently by name, so
	// their rows can interleave by date. Grouping must key on member id
	// and keep exactly one group per member.
	store := &fakeReportStore{
		schedule: []repository.ScheduleRow{
			{CrewMemberID: 1, CrewName: "Sam Okafor", EventID: 10, EventName: "Summer Gala", EventDate: "2026-09-01", Status: "confirmed"},
			{CrewMemberID: 2, CrewName: "Sam Okafor", EventID: 11, EventName: "Street Fair", EventDate: "2026-09-02", Status: "pending"},
			{CrewMemberID: 1, CrewName: "Sam Okafor", EventID: 12, EventName: "Load Out", EventDate: "2026-09-03", Status: "pending"},
		},
	}
	svc := NewReportService(store, &fakeEventStore{})

	got, err := svc.CrewScheduleReport(context.Background(), str("2026-09-01"), nil, nil)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].CrewMemberID)
	require.Len(t, got[0].Items, 2)
	assert.Equal(t, "Summer Gala", got[0].Items[0].EventName)
	assert.Equal(t, "Load Out", got[0].Items[1].EventName)
	assert.Equal(t, uint64(2), got[1].CrewMemberID)
	require.Len(t, got[1].Items, 1)
}

func TestCrewScheduleReportExplicitStart(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(store, &fakeEventStore{})

	_, err := svc.CrewScheduleReport(context.Background(), str("2026-10-01"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", store.scheduleStart)
}
