package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrBedroomNotFound is returned when a bedroom lookup fails.
var ErrBedroomNotFound = errors.New("bedroom not found")

// BedroomRepo provides CRUD over the `bedrooms` table.
type BedroomRepo struct {
	db *sql.DB
}

// NewBedroomRepo constructs a BedroomRepo with the given DB handle.
func NewBedroomRepo(db *sql.DB) *BedroomRepo { return &BedroomRepo{db: db} }

const bedroomColumns = `id, location_id, name, description, created_at, updated_at`

func scanBedroom(row interface{ Scan(...any) error }, b *model.Bedroom) error {
	return row.Scan(&b.ID, &b.LocationID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
}

// Create inserts a bedroom under an existing location and reads the
// row back to populate timestamps.
func (r *BedroomRepo) Create(ctx context.Context, b *model.Bedroom) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	const qInsert = `INSERT INTO bedrooms (id, location_id, name, description) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, qInsert, b.ID, b.LocationID, b.Name, b.Description); err != nil {
		return err
	}
	const qSelect = `SELECT ` + bedroomColumns + ` FROM bedrooms WHERE id = ?`
	return scanBedroom(r.db.QueryRowContext(ctx, qSelect, b.ID), b)
}

// GetByID fetches one bedroom, returning ErrBedroomNotFound on a miss.
func (r *BedroomRepo) GetByID(ctx context.Context, id string) (*model.Bedroom, error) {
	const q = `SELECT ` + bedroomColumns + ` FROM bedrooms WHERE id = ?`
	var b model.Bedroom
	if err := scanBedroom(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBedroomNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByLocation returns a location's bedrooms ordered by name.  This
// backs the edit panel's dependent bedroom dropdown.
func (r *BedroomRepo) ListByLocation(ctx context.Context, locationID string) ([]*model.Bedroom, error) {
	const q = `SELECT ` + bedroomColumns + ` FROM bedrooms WHERE location_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Bedroom
	for rows.Next() {
		b := new(model.Bedroom)
		if err := scanBedroom(rows, b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists name and description edits.
func (r *BedroomRepo) Update(ctx context.Context, b *model.Bedroom) error {
	const q = `UPDATE bedrooms SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Name, b.Description, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows covers both a missing bedroom and a no-op update.
		var found string
		if err := r.db.QueryRowContext(ctx, `SELECT id FROM bedrooms WHERE id = ?`, b.ID).Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBedroomNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a bedroom together with its beds, their assignments
// and the assignment join rows, all in one transaction.
func (r *BedroomRepo) Delete(ctx context.Context, id string) error {
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
	if err = tx.QueryRowContext(ctx, `SELECT id FROM bedrooms WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrBedroomNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE rap FROM room_assignment_profiles rap
		 JOIN room_assignments ra ON ra.id = rap.assignment_id
		 WHERE ra.bedroom_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM room_assignments WHERE bedroom_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM beds WHERE bedroom_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM bedrooms WHERE id = ?`, id)
	return err
}
