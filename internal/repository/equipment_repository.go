package repository

import (
	"context"
	"database/sql"

	"github.com/avelhart/crewcall/internal/model"
)

// EquipmentRepo provides CRUD operations for equipment items.
type EquipmentRepo struct{ DB *sql.DB }

// NewEquipmentRepo returns an EquipmentRepo bound to the given database.
func NewEquipmentRepo(db *sql.DB) *EquipmentRepo { return &EquipmentRepo{DB: db} }

const equipmentColumns = `id, name, category, daily_rate, replacement_cost, quantity_available, is_active, created_at, updated_at`

func scanEquipment(row interface{ Scan(...any) error }) (*model.Equipment, error) {
	var (
		e        model.Equipment
		category sql.NullString
		daily    sql.NullFloat64
		repl     sql.NullFloat64
	)
	if err := row.Scan(&e.ID, &e.Name, &category, &daily, &repl, &e.QuantityAvailable, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Category = strPtr(category)
	e.DailyRate = f64Ptr(daily)
	e.ReplacementCost = f64Ptr(repl)
	return &e, nil
}

// Create inserts an equipment item and populates its ID and timestamps.
func (r *EquipmentRepo) Create(ctx context.Context, e *model.Equipment) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO equipment (name, category, daily_rate, replacement_cost, quantity_available, is_active) VALUES (?,?,?,?,?,?)`,
		e.Name, e.Category, e.DailyRate, e.ReplacementCost, e.QuantityAvailable, e.IsActive)
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

// GetByID fetches one equipment item. Returns ErrEquipmentNotFound
// when no row matches.
func (r *EquipmentRepo) GetByID(ctx context.Context, id uint64) (*model.Equipment, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id)
	e, err := scanEquipment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns equipment ordered by category then name.
func (r *EquipmentRepo) List(ctx context.Context, activeOnly bool) ([]model.Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipment`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY category, name`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update overwrites the editable fields of an equipment item.
func (r *EquipmentRepo) Update(ctx context.Context, e *model.Equipment) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE equipment SET name=?, category=?, daily_rate=?, replacement_cost=?, quantity_available=?, is_active=? WHERE id=?`,
		e.Name, e.Category, e.DailyRate, e.ReplacementCost, e.QuantityAvailable, e.IsActive, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM equipment WHERE id=?`, e.ID).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrEquipmentNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes an equipment item by id.
func (r *EquipmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM equipment WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}
