package service

import (
	"context"
	"time"

	"github.com/avelhart/crewcall/internal/costing"
)

// UnassignedCostCenter is the bucket label for events that carry no
// cost center of their own.
const UnassignedCostCenter = "Unassigned"

// ReportService computes the read-only reports: availability, per-event
// cost drill-down, the cost-center roll-up and the crew schedule. All
// arithmetic delegates to the costing package; this layer only shapes
// rows into report structures.
type ReportService struct {
	store  ReportStore
	events EventStore
	now    func() time.Time
}

// NewReportService wires the service to its stores. The clock defaults
// to time.Now and exists so tests can pin the schedule report's
// default window.
func NewReportService(store ReportStore, events EventStore) *ReportService {
	return &ReportService{store: store, events: events, now: time.Now}
}

// AvailabilitySlot is one booking of a crew member inside the queried
// window.
type AvailabilitySlot struct {
	Date      string `json:"date"`
	EventName string `json:"event_name"`
}

// CrewAvailability lists one crew member's bookings in the window. A
// member with an empty Assignments slice is free for the whole range.
type CrewAvailability struct {
	CrewMemberID uint64             `json:"crew_member_id"`
	Name         string             `json:"name"`
	Assignments  []AvailabilitySlot `json:"assignments"`
}

// CrewAvailability reports every active crew member's bookings inside
// the inclusive [start, end] date range. Members with no bookings are
// included with an empty slot list, since the report's purpose is to
// find who is free. Members are ordered by name and slots by date.
func (s *ReportService) CrewAvailability(ctx context.Context, start, end string) ([]CrewAvailability, error) {
	members, err := s.store.ActiveCrewMembers(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.BookingsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byMember := make(map[uint64][]AvailabilitySlot, len(members))
	for _, b := range bookings {
		byMember[b.CrewMemberID] = append(byMember[b.CrewMemberID], AvailabilitySlot{
			Date:      b.EventDate,
			EventName: b.EventName,
		})
	}
	out := make([]CrewAvailability, 0, len(members))
	for _, m := range members {
		slots := byMember[m.ID]
		if slots == nil {
			slots = make([]AvailabilitySlot, 0)
		}
		out = append(out, CrewAvailability{
			CrewMemberID: m.ID,
			Name:         m.Name,
			Assignments:  slots,
		})
	}
	return out, nil
}

// EventCostSummary is the per-event cost drill-down. CrewCost uses the
// recorded call/end times of each assignment.
type EventCostSummary struct {
	EventID        uint64  `json:"event_id"`
	EventName      string  `json:"event_name"`
	Date           string  `json:"date"`
	CrewCount      int     `json:"crew_count"`
	EquipmentCount int     `json:"equipment_count"`
	CrewCost       float64 `json:"crew_cost"`
	EquipmentCost  float64 `json:"equipment_cost"`
	TotalCost      float64 `json:"total_cost"`
}

// EventCostSummary computes the cost breakdown of one event from its
// assignments. Returns repository.ErrEventNotFound when the event does
// not exist.
func (s *ReportService) EventCostSummary(ctx context.Context, eventID uint64) (*EventCostSummary, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	crewRows, err := s.store.CrewCostRowsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	equipRows, err := s.store.EquipmentCostRowsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	sum := &EventCostSummary{
		EventID:        event.ID,
		EventName:      event.Name,
		Date:           event.Date,
		CrewCount:      len(crewRows),
		EquipmentCount: len(equipRows),
	}
	for _, row := range crewRows {
		sum.CrewCost += costing.CrewCost(row.RateOverride, row.DefaultRate, row.CallTime, row.EndTime)
	}
	for _, row := range equipRows {
		qty := row.Quantity
		sum.EquipmentCost += costing.EquipmentCost(row.RateOverride, row.DailyRate, &qty)
	}
	sum.TotalCost = sum.CrewCost + sum.EquipmentCost
	return sum, nil
}

// EventCost is one event's contribution inside a cost-center bucket.
type EventCost struct {
	EventID       uint64  `json:"event_id"`
	EventName     string  `json:"event_name"`
	Date          string  `json:"date"`
	CrewCost      float64 `json:"crew_cost"`
	EquipmentCost float64 `json:"equipment_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// Totals accumulates crew, equipment and combined cost.
type Totals struct {
	Crew      float64 `json:"crew"`
	Equipment float64 `json:"equipment"`
	Total     float64 `json:"total"`
}

// CostCenterBucket groups the events of one cost center with their
// accumulated totals.
type CostCenterBucket struct {
	Events []EventCost `json:"events"`
	Totals Totals      `json:"totals"`
}

// CostReport is the cost-center roll-up over a set of events.
type CostReport struct {
	CostCenters map[string]*CostCenterBucket `json:"cost_centers"`
	GrandTotal  float64                      `json:"grand_total"`
	EventCount  int                          `json:"event_count"`
}

// CostReport rolls events up by cost center over the optional filters.
// Crew cost here uses a flat default shift per assignment rather than
// recorded times, which keeps the roll-up a stable budgeting figure
// even while call sheets are still in flux. Events without a cost
// center land in the "Unassigned" bucket.
func (s *ReportService) CostReport(ctx context.Context, start, end, costCenter *string) (*CostReport, error) {
	events, err := s.store.EventsFiltered(ctx, start, end, costCenter)
	if err != nil {
		return nil, err
	}
	report := &CostReport{
		CostCenters: make(map[string]*CostCenterBucket),
		EventCount:  len(events),
	}
	if len(events) == 0 {
		return report, nil
	}
	ids := make([]uint64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	crewRows, err := s.store.CrewCostRowsForEvents(ctx, ids)
	if err != nil {
		return nil, err
	}
	equipRows, err := s.store.EquipmentCostRowsForEvents(ctx, ids)
	if err != nil {
		return nil, err
	}
	crewByEvent := make(map[uint64]float64)
	for _, row := range crewRows {
		crewByEvent[row.EventID] += costing.FlatCrewCost(row.RateOverride, row.DefaultRate)
	}
	equipByEvent := make(map[uint64]float64)
	for _, row := range equipRows {
		qty := row.Quantity
		equipByEvent[row.EventID] += costing.EquipmentCost(row.RateOverride, row.DailyRate, &qty)
	}
	for _, e := range events {
		label := UnassignedCostCenter
		if e.CostCenter != nil && *e.CostCenter != "" {
			label = *e.CostCenter
		}
		bucket := report.CostCenters[label]
		if bucket == nil {
			bucket = &CostCenterBucket{Events: make([]EventCost, 0)}
			report.CostCenters[label] = bucket
		}
		ec := EventCost{
			EventID:       e.ID,
			EventName:     e.Name,
			Date:          e.Date,
			CrewCost:      crewByEvent[e.ID],
			EquipmentCost: equipByEvent[e.ID],
		}
		ec.TotalCost = ec.CrewCost + ec.EquipmentCost
		bucket.Events = append(bucket.Events, ec)
		bucket.Totals.Crew += ec.CrewCost
		bucket.Totals.Equipment += ec.EquipmentCost
		bucket.Totals.Total += ec.TotalCost
		report.GrandTotal += ec.TotalCost
	}
	return report, nil
}

// ScheduleItem is one upcoming assignment on a crew member's schedule.
type ScheduleItem struct {
	EventID   uint64  `json:"event_id"`
	EventName string  `json:"event_name"`
	Date      string  `json:"date"`
	Venue     *string `json:"venue,omitempty"`
	CallTime  *string `json:"call_time,omitempty"`
	Position  *string `json:"position,omitempty"`
	Status    string  `json:"status"`
}

// CrewSchedule groups one crew member's schedule items, ordered by
// event date then start time.
type CrewSchedule struct {
	CrewMemberID uint64         `json:"crew_member_id"`
	CrewName     string         `json:"crew_name"`
	Items        []ScheduleItem `json:"items"`
}

// CrewScheduleReport lists upcoming assignments grouped per crew
// member. When start is nil the window opens at today (UTC); end and
// crewMemberID narrow the result further. Members appear in name order
// and only when they have at least one matching assignment.
func (s *ReportService) CrewScheduleReport(ctx context.Context, start, end *string, crewMemberID *uint64) ([]CrewSchedule, error) {
	from := s.now().UTC().Format("2006-01-02")
	if start != nil {
		from = *start
	}
	rows, err := s.store.ScheduleRows(ctx, from, end, crewMemberID)
	if err != nil {
		return nil, err
	}
	out := make([]CrewSchedule, 0)
	// Group on member id, not name: names are not unique. The index map
	// keeps one group per member even if the store interleaves rows.
	index := make(map[uint64]int)
	for _, row := range rows {
		item := ScheduleItem{
			EventID:   row.EventID,
			EventName: row.EventName,
			Date:      row.EventDate,
			Venue:     row.Venue,
			CallTime:  row.CallTime,
			Position:  row.PositionName,
			Status:    row.Status,
		}
		if i, ok := index[row.CrewMemberID]; ok {
			out[i].Items = append(out[i].Items, item)
			continue
		}
		index[row.CrewMemberID] = len(out)
		out = append(out, CrewSchedule{
			CrewMemberID: row.CrewMemberID,
			CrewName:     row.CrewName,
			Items:        []ScheduleItem{item},
		})
	}
	return out, nil
}
