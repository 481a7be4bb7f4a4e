package repository

import (
	"context"
	"database/sql"

	"github.com/avelhart/crewcall/internal/model"
)

// EventRepo provides CRUD operations for events. The assignment engine
// only reads events; the write operations back the scheduling CRUD
// surface.  Dates are exchanged as "2006-01-02" strings and clock
// times as "15:04:05" strings, formatted in SQL so the driver's
// parseTime setting never bites.
type EventRepo struct{ DB *sql.DB }

// NewEventRepo returns an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = `id, name, DATE_FORMAT(event_date, '%Y-%m-%d'), start_time, end_time, load_in, load_out, venue, cost_center, status, notes, created_by, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	var (
		e          model.Event
		start, end sql.NullString
		loadIn     sql.NullString
		loadOut    sql.NullString
		venue      sql.NullString
		costCenter sql.NullString
		notes      sql.NullString
		createdBy  sql.NullInt64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Date, &start, &end, &loadIn, &loadOut, &venue, &costCenter, &e.Status, &notes, &createdBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.StartTime = strPtr(start)
	e.EndTime = strPtr(end)
	e.LoadIn = strPtr(loadIn)
	e.LoadOut = strPtr(loadOut)
	e.Venue = strPtr(venue)
	e.CostCenter = strPtr(costCenter)
	e.Notes = strPtr(notes)
	e.CreatedBy = u64Ptr(createdBy)
	return &e, nil
}

// Create inserts an event and populates its ID and timestamps.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO events (name, event_date, start_time, end_time, load_in, load_out, venue, cost_center, status, notes, created_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		e.Name, e.Date, e.StartTime, e.EndTime, e.LoadIn, e.LoadOut, e.Venue, e.CostCenter, e.Status, e.Notes, e.CreatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	fresh, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *fresh
	return nil
}

// GetByID fetches one event. Returns ErrEventNotFound when no row
// matches.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns events ordered by date, optionally bounded by an
// inclusive date range. Nil bounds are open ended.
func (r *EventRepo) List(ctx context.Context, start, end *string) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events`
	args := make([]any, 0, 2)
	switch {
	case start != nil && end != nil:
		q += ` WHERE event_date BETWEEN ? AND ?`
		args = append(args, *start, *end)
	case start != nil:
		q += ` WHERE event_date >= ?`
		args = append(args, *start)
	case end != nil:
		q += ` WHERE event_date <= ?`
		args = append(args, *end)
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

// Update overwrites the editable fields of an event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE events SET name=?, event_date=?, start_time=?, end_time=?, load_in=?, load_out=?, venue=?, cost_center=?, status=?, notes=? WHERE id=?`,
		e.Name, e.Date, e.StartTime, e.EndTime, e.LoadIn, e.LoadOut, e.Venue, e.CostCenter, e.Status, e.Notes, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id=?`, e.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrEventNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes an event by id. Assignments referencing the event are
// removed by the cascading foreign keys.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}
