package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/avelhart/crewcall/internal/model"
)

// EquipmentAssignmentRepo provides persistence for equipment
// assignments, mirroring CrewAssignmentRepo with quantity in place of
// the call/end time fields.
type EquipmentAssignmentRepo struct{ DB *sql.DB }

// NewEquipmentAssignmentRepo returns an EquipmentAssignmentRepo bound
// to the given database.
func NewEquipmentAssignmentRepo(db *sql.DB) *EquipmentAssignmentRepo {
	return &EquipmentAssignmentRepo{DB: db}
}

const equipmentDetailQuery = `SELECT ea.id, ea.event_id, ea.equipment_id, ea.quantity, ea.rate_override,
		ea.notes, ea.created_by, ea.created_at, ea.updated_at,
		eq.name, eq.category, eq.daily_rate
	FROM equipment_assignments ea
	JOIN equipment eq ON eq.id = ea.equipment_id`

func scanEquipmentDetail(row interface{ Scan(...any) error }) (*model.EquipmentAssignmentDetail, error) {
	var (
		d        model.EquipmentAssignmentDetail
		override sql.NullFloat64
		notes    sql.NullString
		creator  sql.NullInt64
		category sql.NullString
		daily    sql.NullFloat64
	)
	if err := row.Scan(&d.ID, &d.EventID, &d.EquipmentID, &d.Quantity, &override,
		&notes, &creator, &d.CreatedAt, &d.UpdatedAt,
		&d.EquipmentName, &category, &daily); err != nil {
		return nil, err
	}
	d.RateOverride = f64Ptr(override)
	d.Notes = strPtr(notes)
	d.CreatedBy = u64Ptr(creator)
	d.Category = strPtr(category)
	d.DefaultRate = f64Ptr(daily)
	return &d, nil
}

// Insert persists a new equipment assignment and populates its ID. A
// duplicate (event, equipment) pair returns ErrConflict.
func (r *EquipmentAssignmentRepo) Insert(ctx context.Context, a *model.EquipmentAssignment) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO equipment_assignments (event_id, equipment_id, quantity, rate_override, notes, created_by)
		 VALUES (?,?,?,?,?,?)`,
		a.EventID, a.EquipmentID, a.Quantity, a.RateOverride, a.Notes, a.CreatedBy)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// DetailByID returns one assignment enriched with equipment display
// fields. Returns ErrAssignmentNotFound when no row matches.
func (r *EquipmentAssignmentRepo) DetailByID(ctx context.Context, id uint64) (*model.EquipmentAssignmentDetail, error) {
	row := r.DB.QueryRowContext(ctx, equipmentDetailQuery+` WHERE ea.id = ?`, id)
	d, err := scanEquipmentDetail(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListDetailsByEvent returns all equipment assignments for an event,
// ordered by category then item name.
func (r *EquipmentAssignmentRepo) ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.EquipmentAssignmentDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		equipmentDetailQuery+` WHERE ea.event_id = ? ORDER BY eq.category, eq.name`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.EquipmentAssignmentDetail, 0)
	for rows.Next() {
		d, err := scanEquipmentDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Update applies the supplied fields only.
func (r *EquipmentAssignmentRepo) Update(ctx context.Context, id uint64, u EquipmentAssignmentUpdate) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	applyInt(&sets, &args, "quantity", u.Quantity)
	applyFloat(&sets, &args, "rate_override", u.RateOverride)
	applyString(&sets, &args, "notes", u.Notes)
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE equipment_assignments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM equipment_assignments WHERE id=?`, id).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrAssignmentNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes an equipment assignment by id.
func (r *EquipmentAssignmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM equipment_assignments WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
