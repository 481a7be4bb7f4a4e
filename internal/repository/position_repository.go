package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelhart/crewcall/internal/model"
)

// ErrPositionExists is returned when a position insert collides with
// the unique name key.
var ErrPositionExists = errors.New("position name already exists")

// PositionRepo provides CRUD operations for crew positions.
type PositionRepo struct{ DB *sql.DB }

// NewPositionRepo returns a PositionRepo bound to the given database.
func NewPositionRepo(db *sql.DB) *PositionRepo { return &PositionRepo{DB: db} }

func scanPosition(row interface{ Scan(...any) error }) (*model.Position, error) {
	var (
		p    model.Position
		rate sql.NullFloat64
	)
	if err := row.Scan(&p.ID, &p.Name, &rate, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.HourlyRate = f64Ptr(rate)
	return &p, nil
}

// Create inserts a position and populates its ID and timestamps.
func (r *PositionRepo) Create(ctx context.Context, p *model.Position) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO positions (name, hourly_rate, sort_order) VALUES (?,?,?)`,
		p.Name, p.HourlyRate, p.SortOrder)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrPositionExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	fresh, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *fresh
	return nil
}

// GetByID fetches one position. Returns ErrPositionNotFound when no
// row matches.
func (r *PositionRepo) GetByID(ctx context.Context, id uint64) (*model.Position, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT id, name, hourly_rate, sort_order, created_at, updated_at FROM positions WHERE id = ?`, id)
	p, err := scanPosition(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all positions in display order. Sort order is purely
// cosmetic; ties fall back to name.
func (r *PositionRepo) List(ctx context.Context) ([]model.Position, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, hourly_rate, sort_order, created_at, updated_at FROM positions ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Position, 0)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update overwrites the editable fields of a position.
func (r *PositionRepo) Update(ctx context.Context, p *model.Position) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE positions SET name=?, hourly_rate=?, sort_order=? WHERE id=?`,
		p.Name, p.HourlyRate, p.SortOrder, p.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrPositionExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM positions WHERE id=?`, p.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrPositionNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a position by id.
func (r *PositionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM positions WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPositionNotFound
	}
	return nil
}
