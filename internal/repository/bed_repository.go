package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrBedNotFound is returned when a bed lookup fails.
var ErrBedNotFound = errors.New("bed not found")

// BedRepo provides CRUD over the `beds` table, the leaf of the
// hierarchy and the entity assignments actually reference.
type BedRepo struct {
	db *sql.DB
}

// NewBedRepo constructs a BedRepo with the given DB handle.
func NewBedRepo(db *sql.DB) *BedRepo { return &BedRepo{db: db} }

const bedColumns = `id, bedroom_id, name, bed_type, description, created_at, updated_at`

func scanBed(row interface{ Scan(...any) error }, b *model.Bed) error {
	return row.Scan(&b.ID, &b.BedroomID, &b.Name, &b.BedType, &b.Description, &b.CreatedAt, &b.UpdatedAt)
}

// Create inserts a bed under an existing bedroom and reads the row
// back to populate timestamps.
func (r *BedRepo) Create(ctx context.Context, b *model.Bed) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	const qInsert = `INSERT INTO beds (id, bedroom_id, name, bed_type, description) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, qInsert, b.ID, b.BedroomID, b.Name, b.BedType, b.Description); err != nil {
		return err
	}
	const qSelect = `SELECT ` + bedColumns + ` FROM beds WHERE id = ?`
	return scanBed(r.db.QueryRowContext(ctx, qSelect, b.ID), b)
}

// GetByID fetches one bed, returning ErrBedNotFound on a miss.
func (r *BedRepo) GetByID(ctx context.Context, id string) (*model.Bed, error) {
	const q = `SELECT ` + bedColumns + ` FROM beds WHERE id = ?`
	var b model.Bed
	if err := scanBed(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBedNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByBedroom returns a bedroom's beds ordered by name, backing the
// edit panel's dependent bed dropdown.
func (r *BedRepo) ListByBedroom(ctx context.Context, bedroomID string) ([]*model.Bed, error) {
	const q = `SELECT ` + bedColumns + ` FROM beds WHERE bedroom_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, bedroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Bed
	for rows.Next() {
		b := new(model.Bed)
		if err := scanBed(rows, b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists name, type and description edits.
func (r *BedRepo) Update(ctx context.Context, b *model.Bed) error {
	const q = `UPDATE beds SET name = ?, bed_type = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Name, b.BedType, b.Description, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows covers both a missing bed and a no-op update.
		var found string
		if err := r.db.QueryRowContext(ctx, `SELECT id FROM beds WHERE id = ?`, b.ID).Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBedNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a bed, its assignments and their join rows in one
// transaction.
func (r *BedRepo) Delete(ctx context.Context, id string) error {
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
	if err = tx.QueryRowContext(ctx, `SELECT id FROM beds WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrBedNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE rap FROM room_assignment_profiles rap
		 JOIN room_assignments ra ON ra.id = rap.assignment_id
		 WHERE ra.bed_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM room_assignments WHERE bed_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM beds WHERE id = ?`, id)
	return err
}
