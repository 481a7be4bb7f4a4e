package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/avelhart/crewcall/internal/model"
)

// ReportRepo bundles the read-only queries behind availability and
// cost reporting. It never writes; the rows it returns are projected
// into report shapes by the service layer, which also owns all cost
// arithmetic so the rate-fallback logic lives in one place.
type ReportRepo struct{ DB *sql.DB }

// NewReportRepo returns a ReportRepo bound to the given database.
func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{DB: db} }

// BookingRow is one crew assignment projected onto its event date, as
// consumed by the availability report.
type BookingRow struct {
	CrewMemberID uint64
	EventDate    string
	EventName    string
}

// CrewCostRow carries the inputs of one crew assignment's cost: the
// override, the member's default rate and the recorded times.
type CrewCostRow struct {
	EventID      uint64
	RateOverride *float64
	DefaultRate  *float64
	CallTime     *string
	EndTime      *string
}

// EquipmentCostRow carries the inputs of one equipment assignment's
// cost.
type EquipmentCostRow struct {
	EventID      uint64
	RateOverride *float64
	DailyRate    *float64
	Quantity     int
}

// ScheduleRow is one crew assignment joined with its event and member,
// as consumed by the crew schedule report.
type ScheduleRow struct {
	CrewMemberID uint64
	CrewName     string
	EventID      uint64
	EventName    string
	EventDate    string
	Venue        *string
	CallTime     *string
	PositionName *string
	Status       string
}

// ActiveCrewMembers returns every active crew member ordered by name.
func (r *ReportRepo) ActiveCrewMembers(ctx context.Context) ([]model.CrewMember, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+crewMemberColumns+` FROM crew_members WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.CrewMember, 0)
	for rows.Next() {
		m, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// BookingsInRange returns every crew assignment whose event date falls
// inside the inclusive [start, end] range, ordered by event date.
func (r *ReportRepo) BookingsInRange(ctx context.Context, start, end string) ([]BookingRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT ca.crew_member_id, DATE_FORMAT(e.event_date, '%Y-%m-%d'), e.name
		 FROM crew_assignments ca
		 JOIN events e ON e.id = ca.event_id
		 WHERE e.event_date BETWEEN ? AND ?
		 ORDER BY e.event_date, e.name`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingRow, 0)
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(&b.CrewMemberID, &b.EventDate, &b.EventName); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// EventsFiltered returns events matching the optional inclusive date
// range and cost-center filters, ordered by date.
func (r *ReportRepo) EventsFiltered(ctx context.Context, start, end, costCenter *string) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events`
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if start != nil {
		where = append(where, `event_date >= ?`)
		args = append(args, *start)
	}
	if end != nil {
		where = append(where, `event_date <= ?`)
		args = append(args, *end)
	}
	if costCenter != nil {
		where = append(where, `cost_center = ?`)
		args = append(args, *costCenter)
	}
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY event_date, start_time`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

const crewCostQuery = `SELECT ca.event_id, ca.rate_override, cm.hourly_rate, ca.call_time, ca.end_time
	FROM crew_assignments ca
	JOIN crew_members cm ON cm.id = ca.crew_member_id`

func (r *ReportRepo) scanCrewCostRows(rows *sql.Rows) ([]CrewCostRow, error) {
	defer rows.Close()
	out := make([]CrewCostRow, 0)
	for rows.Next() {
		var (
			c        CrewCostRow
			override sql.NullFloat64
			defRate  sql.NullFloat64
			call     sql.NullString
			end      sql.NullString
		)
		if err := rows.Scan(&c.EventID, &override, &defRate, &call, &end); err != nil {
			return nil, err
		}
		c.RateOverride = f64Ptr(override)
		c.DefaultRate = f64Ptr(defRate)
		c.CallTime = strPtr(call)
		c.EndTime = strPtr(end)
		out = append(out, c)
	}
	return out, rows.Err()
}

// CrewCostRowsByEvent returns the cost inputs of every crew assignment
// on one event.
func (r *ReportRepo) CrewCostRowsByEvent(ctx context.Context, eventID uint64) ([]CrewCostRow, error) {
	rows, err := r.DB.QueryContext(ctx, crewCostQuery+` WHERE ca.event_id = ?`, eventID)
	if err != nil {
		return nil, err
	}
	return r.scanCrewCostRows(rows)
}

// CrewCostRowsForEvents returns the cost inputs of every crew
// assignment across the given events in a single IN query.
func (r *ReportRepo) CrewCostRowsForEvents(ctx context.Context, eventIDs []uint64) ([]CrewCostRow, error) {
	if len(eventIDs) == 0 {
		return []CrewCostRow{}, nil
	}
	placeholders, args := inArgs(eventIDs)
	rows, err := r.DB.QueryContext(ctx, crewCostQuery+` WHERE ca.event_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	return r.scanCrewCostRows(rows)
}

const equipmentCostQuery = `SELECT ea.event_id, ea.rate_override, eq.daily_rate, ea.quantity
	FROM equipment_assignments ea
	JOIN equipment eq ON eq.id = ea.equipment_id`

func (r *ReportRepo) scanEquipmentCostRows(rows *sql.Rows) ([]EquipmentCostRow, error) {
	defer rows.Close()
	out := make([]EquipmentCostRow, 0)
	for rows.Next() {
		var (
			c        EquipmentCostRow
			override sql.NullFloat64
			daily    sql.NullFloat64
		)
		if err := rows.Scan(&c.EventID, &override, &daily, &c.Quantity); err != nil {
			return nil, err
		}
		c.RateOverride = f64Ptr(override)
		c.DailyRate = f64Ptr(daily)
		out = append(out, c)
	}
	return out, rows.Err()
}

// EquipmentCostRowsByEvent returns the cost inputs of every equipment
// assignment on one event.
func (r *ReportRepo) EquipmentCostRowsByEvent(ctx context.Context, eventID uint64) ([]EquipmentCostRow, error) {
	rows, err := r.DB.QueryContext(ctx, equipmentCostQuery+` WHERE ea.event_id = ?`, eventID)
	if err != nil {
		return nil, err
	}
	return r.scanEquipmentCostRows(rows)
}

// EquipmentCostRowsForEvents returns the cost inputs of every
// equipment assignment across the given events.
func (r *ReportRepo) EquipmentCostRowsForEvents(ctx context.Context, eventIDs []uint64) ([]EquipmentCostRow, error) {
	if len(eventIDs) == 0 {
		return []EquipmentCostRow{}, nil
	}
	placeholders, args := inArgs(eventIDs)
	rows, err := r.DB.QueryContext(ctx, equipmentCostQuery+` WHERE ea.event_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	return r.scanEquipmentCostRows(rows)
}

// ScheduleRows returns crew assignments joined with their events and
// members for the schedule report: events on or after start, optionally
// bounded by end and filtered to a single member, ordered by crew name
// (member id breaks ties between identical names), event date, then
// event start time.
func (r *ReportRepo) ScheduleRows(ctx context.Context, start string, end *string, crewMemberID *uint64) ([]ScheduleRow, error) {
	q := `SELECT ca.crew_member_id, cm.name, e.id, e.name, DATE_FORMAT(e.event_date, '%Y-%m-%d'),
			e.venue, ca.call_time, p.name, ca.status
		FROM crew_assignments ca
		JOIN crew_members cm ON cm.id = ca.crew_member_id
		JOIN events e ON e.id = ca.event_id
		LEFT JOIN positions p ON p.id = ca.position_id
		WHERE e.event_date >= ?`
	args := []any{start}
	if end != nil {
		q += ` AND e.event_date <= ?`
		args = append(args, *end)
	}
	if crewMemberID != nil {
		q += ` AND ca.crew_member_id = ?`
		args = append(args, *crewMemberID)
	}
	q += ` ORDER BY cm.name, ca.crew_member_id, e.event_date, e.start_time`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ScheduleRow, 0)
	for rows.Next() {
		var (
			s       ScheduleRow
			venue   sql.NullString
			call    sql.NullString
			posName sql.NullString
		)
		if err := rows.Scan(&s.CrewMemberID, &s.CrewName, &s.EventID, &s.EventName, &s.EventDate,
			&venue, &call, &posName, &s.Status); err != nil {
			return nil, err
		}
		s.Venue = strPtr(venue)
		s.CallTime = strPtr(call)
		s.PositionName = strPtr(posName)
		out = append(out, s)
	}
	return out, rows.Err()
}

// inArgs builds a "?,?,?" placeholder list and the matching args slice.
func inArgs(ids []uint64) (string, []any) {
	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}
	return strings.Join(placeholders, ","), args
}
