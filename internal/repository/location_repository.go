package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrLocationNotFound is returned when a location lookup fails.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepo encapsulates all database queries for the `locations`
// table, the root of the physical hierarchy.
type LocationRepo struct {
	db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the given DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *LocationRepo) DB() *sql.DB { return r.db }

const locationColumns = `id, name, building, floor, description, max_occupancy, type, created_at, updated_at`

func scanLocation(row interface{ Scan(...any) error }, l *model.Location) error {
	return row.Scan(&l.ID, &l.Name, &l.Building, &l.Floor, &l.Description, &l.MaxOccupancy, &l.Type, &l.CreatedAt, &l.UpdatedAt)
}

// Create inserts a new location.  The ID is generated here when the
// caller leaves it empty.  After the insert the row is read back so the
// timestamp fields are populated.
func (r *LocationRepo) Create(ctx context.Context, l *model.Location) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Type == "" {
		l.Type = model.LocationTypeApartment
	}
	const qInsert = `INSERT INTO locations (id, name, building, floor, description, max_occupancy, type)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, qInsert, l.ID, l.Name, l.Building, l.Floor, l.Description, l.MaxOccupancy, l.Type); err != nil {
		return err
	}
	const qSelect = `SELECT ` + locationColumns + ` FROM locations WHERE id = ?`
	return scanLocation(r.db.QueryRowContext(ctx, qSelect, l.ID), l)
}

// GetByID fetches one location.  Returns ErrLocationNotFound when no
// row matches.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locations WHERE id = ?`
	var l model.Location
	if err := scanLocation(r.db.QueryRowContext(ctx, q, id), &l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &l, nil
}

// List returns all locations ordered by name, the order the grid and
// the edit panel's location dropdown present them in.
func (r *LocationRepo) List(ctx context.Context) ([]*model.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locations ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Location
	for rows.Next() {
		l := new(model.Location)
		if err := scanLocation(rows, l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists name, labels, description, occupancy and type.
// Returns ErrLocationNotFound when no row was touched.
func (r *LocationRepo) Update(ctx context.Context, l *model.Location) error {
	const q = `UPDATE locations
	           SET name = ?, building = ?, floor = ?, description = ?, max_occupancy = ?, type = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, l.Name, l.Building, l.Floor, l.Description, l.MaxOccupancy, l.Type, l.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows covers both a missing location and a no-op update.
		var found string
		if err := r.db.QueryRowContext(ctx, `SELECT id FROM locations WHERE id = ?`, l.ID).Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrLocationNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a location and everything hanging off it: assignment
// join rows, assignments, beds and bedrooms, inside one transaction so
// a partial cascade can never survive.  The schema carries matching
// ON DELETE constraints, but the explicit cascade keeps the repository
// correct against permissive schemas too.
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM locations WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrLocationNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE rap FROM room_assignment_profiles rap
		 JOIN room_assignments ra ON ra.id = rap.assignment_id
		 WHERE ra.location_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM room_assignments WHERE location_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE b FROM beds b
		 JOIN bedrooms br ON br.id = b.bedroom_id
		 WHERE br.location_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bedrooms WHERE location_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	return err
}
