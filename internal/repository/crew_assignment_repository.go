package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/avelhart/crewcall/internal/model"
)

// CrewAssignmentRepo provides persistence for crew assignments. The
// unique (event_id, crew_member_id) key makes the database the sole
// arbiter of the one-assignment-per-member-per-event invariant, so two
// racing inserts for the same pair cannot both succeed; the loser's
// duplicate-key error comes back as ErrConflict.
type CrewAssignmentRepo struct{ DB *sql.DB }

// NewCrewAssignmentRepo returns a CrewAssignmentRepo bound to the
// given database.
func NewCrewAssignmentRepo(db *sql.DB) *CrewAssignmentRepo { return &CrewAssignmentRepo{DB: db} }

// detailQuery joins the member and position tables so callers get the
// display fields and the default rate in a single read.
const crewDetailQuery = `SELECT ca.id, ca.event_id, ca.crew_member_id, ca.position_id, ca.call_time, ca.end_time,
		ca.rate_override, ca.status, ca.notes, ca.created_by, ca.created_at, ca.updated_at,
		cm.name, cm.email, cm.hourly_rate, p.name
	FROM crew_assignments ca
	JOIN crew_members cm ON cm.id = ca.crew_member_id
	LEFT JOIN positions p ON p.id = ca.position_id`

func scanCrewDetail(row interface{ Scan(...any) error }) (*model.CrewAssignmentDetail, error) {
	var (
		d        model.CrewAssignmentDetail
		posID    sql.NullInt64
		call     sql.NullString
		end      sql.NullString
		override sql.NullFloat64
		notes    sql.NullString
		creator  sql.NullInt64
		defRate  sql.NullFloat64
		posName  sql.NullString
	)
	if err := row.Scan(&d.ID, &d.EventID, &d.CrewMemberID, &posID, &call, &end,
		&override, &d.Status, &notes, &creator, &d.CreatedAt, &d.UpdatedAt,
		&d.CrewName, &d.CrewEmail, &defRate, &posName); err != nil {
		return nil, err
	}
	d.PositionID = u64Ptr(posID)
	d.CallTime = strPtr(call)
	d.EndTime = strPtr(end)
	d.RateOverride = f64Ptr(override)
	d.Notes = strPtr(notes)
	d.CreatedBy = u64Ptr(creator)
	d.DefaultRate = f64Ptr(defRate)
	d.PositionName = strPtr(posName)
	return &d, nil
}

// Insert persists a new crew assignment and populates its ID. A
// duplicate (event, member) pair returns ErrConflict.
func (r *CrewAssignmentRepo) Insert(ctx context.Context, a *model.CrewAssignment) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO crew_assignments (event_id, crew_member_id, position_id, call_time, end_time, rate_override, status, notes, created_by)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		a.EventID, a.CrewMemberID, a.PositionID, a.CallTime, a.EndTime, a.RateOverride, a.Status, a.Notes, a.CreatedBy)
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

// DetailByID returns one assignment enriched with member and position
// display fields. Returns ErrAssignmentNotFound when no row matches.
func (r *CrewAssignmentRepo) DetailByID(ctx context.Context, id uint64) (*model.CrewAssignmentDetail, error) {
	row := r.DB.QueryRowContext(ctx, crewDetailQuery+` WHERE ca.id = ?`, id)
	d, err := scanCrewDetail(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListDetailsByEvent returns all crew assignments for an event, in the
// display order used by assignment lists: position sort order, then
// crew name.
func (r *CrewAssignmentRepo) ListDetailsByEvent(ctx context.Context, eventID uint64) ([]model.CrewAssignmentDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		crewDetailQuery+` WHERE ca.event_id = ? ORDER BY COALESCE(p.sort_order, 2147483647), cm.name`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.CrewAssignmentDetail, 0)
	for rows.Next() {
		d, err := scanCrewDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Update applies the supplied fields only, building the SET clause
// from the three-state descriptors. Callers must reject an empty
// update before reaching here; an empty descriptor set is a no-op.
func (r *CrewAssignmentRepo) Update(ctx context.Context, id uint64, u CrewAssignmentUpdate) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	applyUint(&sets, &args, "position_id", u.PositionID)
	applyString(&sets, &args, "call_time", u.CallTime)
	applyString(&sets, &args, "end_time", u.EndTime)
	applyFloat(&sets, &args, "rate_override", u.RateOverride)
	applyString(&sets, &args, "status", u.Status)
	applyString(&sets, &args, "notes", u.Notes)
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		`UPDATE crew_assignments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can mean a missing row or an update to identical
		// values; only the former is an error.
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM crew_assignments WHERE id=?`, id).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrAssignmentNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a crew assignment by id. The event and crew member it
// referenced are untouched.
func (r *CrewAssignmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM crew_assignments WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// SET-clause builders shared by both assignment repositories.

func applyString(sets *[]string, args *[]any, col string, f OptString) {
	if !f.Set {
		return
	}
	if f.Null {
		*sets = append(*sets, col+" = NULL")
		return
	}
	*sets = append(*sets, col+" = ?")
	*args = append(*args, f.Value)
}

func applyFloat(sets *[]string, args *[]any, col string, f OptFloat) {
	if !f.Set {
		return
	}
	if f.Null {
		*sets = append(*sets, col+" = NULL")
		return
	}
	*sets = append(*sets, col+" = ?")
	*args = append(*args, f.Value)
}

func applyUint(sets *[]string, args *[]any, col string, f OptUint) {
	if !f.Set {
		return
	}
	if f.Null {
		*sets = append(*sets, col+" = NULL")
		return
	}
	*sets = append(*sets, col+" = ?")
	*args = append(*args, f.Value)
}

func applyInt(sets *[]string, args *[]any, col string, f OptInt) {
	if !f.Set {
		return
	}
	if f.Null {
		*sets = append(*sets, col+" = NULL")
		return
	}
	*sets = append(*sets, col+" = ?")
	*args = append(*args, f.Value)
}
