package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/avelhart/crewcall/internal/model"
)

// ErrCrewEmailExists is returned when a crew member insert collides
// with the unique email key.
var ErrCrewEmailExists = errors.New("crew member email already exists")

// CrewMemberRepo provides CRUD operations for crew members. Crew
// members are reference data for the assignment engine: assignments
// point at them but never mutate them.
type CrewMemberRepo struct{ DB *sql.DB }

// NewCrewMemberRepo returns a CrewMemberRepo bound to the given database.
func NewCrewMemberRepo(db *sql.DB) *CrewMemberRepo { return &CrewMemberRepo{DB: db} }

const crewMemberColumns = `id, name, email, phone, position_id, hourly_rate, is_active, created_at, updated_at`

func scanCrewMember(row interface{ Scan(...any) error }) (*model.CrewMember, error) {
	var (
		m     model.CrewMember
		phone sql.NullString
		posID sql.NullInt64
		rate  sql.NullFloat64
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &phone, &posID, &rate, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Phone = strPtr(phone)
	m.PositionID = u64Ptr(posID)
	m.HourlyRate = f64Ptr(rate)
	return &m, nil
}

// Create inserts a crew member and populates its ID and timestamps.
func (r *CrewMemberRepo) Create(ctx context.Context, m *model.CrewMember) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO crew_members (name, email, phone, position_id, hourly_rate, is_active) VALUES (?,?,?,?,?,?)`,
		m.Name, m.Email, m.Phone, m.PositionID, m.HourlyRate, m.IsActive)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrCrewEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	fresh, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// GetByID fetches one crew member. Returns ErrCrewMemberNotFound when
// no row matches.
func (r *CrewMemberRepo) GetByID(ctx context.Context, id uint64) (*model.CrewMember, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+crewMemberColumns+` FROM crew_members WHERE id = ?`, id)
	m, err := scanCrewMember(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCrewMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// List returns crew members ordered by name. When activeOnly is true,
// inactive members are excluded.
func (r *CrewMemberRepo) List(ctx context.Context, activeOnly bool) ([]model.CrewMember, error) {
	q := `SELECT ` + crewMemberColumns + ` FROM crew_members`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.DB.QueryContext(ctx, q)
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

// Update overwrites the editable fields of a crew member.
func (r *CrewMemberRepo) Update(ctx context.Context, m *model.CrewMember) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	res, err := r.DB.ExecContext(ctx,
		`UPDATE crew_members SET name=?, email=?, phone=?, position_id=?, hourly_rate=?, is_active=? WHERE id=?`,
		m.Name, m.Email, m.Phone, m.PositionID, m.HourlyRate, m.IsActive, m.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrCrewEmailExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can mean either a missing row or a no-op update.
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM crew_members WHERE id=?`, m.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrCrewMemberNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a crew member by id.
func (r *CrewMemberRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM crew_members WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCrewMemberNotFound
	}
	return nil
}
