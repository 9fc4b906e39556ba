package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrAssignmentNotFound is returned when an assignment lookup fails.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrAssignmentOverlap is returned when a create, edit or resize would
// place two assignments on the same bed with intersecting date ranges
// and the caller did not explicitly allow the overlap.  It wraps
// ErrConflict so handlers matching the shared sentinel still work.
var ErrAssignmentOverlap = fmt.Errorf("%w: bed already assigned for part of that date range", ErrConflict)

// AssignmentRepo provides data access to `room_assignments` and its
// `room_assignment_profiles` join table.  Every write that touches
// both tables happens inside a single transaction, so an assignment
// and its occupant linkage can never be observed out of sync.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

const assignmentColumns = `id, bed_id, bedroom_id, location_id, start_date, end_date, notes, created_at, updated_at`

func scanAssignment(row interface{ Scan(...any) error }, a *model.Assignment) error {
	return row.Scan(&a.ID, &a.BedID, &a.BedroomID, &a.LocationID, &a.StartDate, &a.EndDate, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches one assignment with its occupant profiles attached.
func (r *AssignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	const q = `SELECT ` + assignmentColumns + ` FROM room_assignments WHERE id = ?`
	var a model.Assignment
	if err := scanAssignment(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if err := r.attachProfiles(ctx, []*model.Assignment{&a}); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListOverlappingWindow returns the assignment snapshot for a visible
// window: every assignment whose inclusive [start_date, end_date]
// range intersects [windowStart, windowEnd].  Dates are yyyy-MM-dd
// strings, which compare correctly as text.  Profiles are attached in
// one follow-up query.
func (r *AssignmentRepo) ListOverlappingWindow(ctx context.Context, windowStart, windowEnd string) ([]*model.Assignment, error) {
	const q = `SELECT ` + assignmentColumns + `
	           FROM room_assignments
	           WHERE start_date <= ? AND end_date >= ?
	           ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, q, windowEnd, windowStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Assignment
	for rows.Next() {
		a := new(model.Assignment)
		if err := scanAssignment(rows, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachProfiles(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachProfiles loads the join table for the given assignments and
// fills each Profiles slice.  Assignments with no occupants end up
// with an empty, non-nil slice.
func (r *AssignmentRepo) attachProfiles(ctx context.Context, assignments []*model.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	byID := make(map[string]*model.Assignment, len(assignments))
	args := make([]any, 0, len(assignments))
	placeholders := ""
	for i, a := range assignments {
		a.Profiles = []*model.Profile{}
		byID[a.ID] = a
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args = append(args, a.ID)
	}
	q := `SELECT rap.assignment_id, ` + prefixedProfileColumns("p") + `
	      FROM room_assignment_profiles rap
	      JOIN profiles p ON p.id = rap.profile_id
	      WHERE rap.assignment_id IN (` + placeholders + `)
	      ORDER BY p.full_name`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var assignmentID string
		p := new(model.Profile)
		if err := rows.Scan(&assignmentID, &p.ID, &p.FullName, &p.Email, &p.AvatarURL, &p.TeamID, &p.HousingPreferences, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		if a, ok := byID[assignmentID]; ok {
			a.Profiles = append(a.Profiles, p)
		}
	}
	return rows.Err()
}

// overlapExistsTx reports whether any other assignment occupies the
// same bed for an intersecting inclusive date range.  Runs inside the
// write transaction so the check and the write are atomic.
func overlapExistsTx(ctx context.Context, tx *sql.Tx, bedID, excludeID, startDate, endDate string) (bool, error) {
	const q = `SELECT COUNT(*) FROM room_assignments
	           WHERE bed_id = ? AND id <> ? AND start_date <= ? AND end_date >= ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, bedID, excludeID, endDate, startDate).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// replaceProfilesTx deletes and reinserts the full join-row set for an
// assignment.  Edits are a full replace, never a diff.
func replaceProfilesTx(ctx context.Context, tx *sql.Tx, assignmentID string, profileIDs []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM room_assignment_profiles WHERE assignment_id = ?`, assignmentID); err != nil {
		return err
	}
	if len(profileIDs) == 0 {
		return nil
	}
	q := `INSERT INTO room_assignment_profiles (assignment_id, profile_id) VALUES `
	args := make([]any, 0, len(profileIDs)*2)
	for i, pid := range profileIDs {
		if i > 0 {
			q += ","
		}
		q += "(?, ?)"
		args = append(args, assignmentID, pid)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// Create inserts an assignment and its occupant join rows in one
// transaction.  Unless allowOverlap is set (mid-stay room changes are
// forced deliberately), a colliding date range on the same bed aborts
// with ErrAssignmentOverlap before anything is written.
func (r *AssignmentRepo) Create(ctx context.Context, a *model.Assignment, profileIDs []string, allowOverlap bool) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if !allowOverlap {
		clash, err := overlapExistsTx(ctx, tx, a.BedID, a.ID, a.StartDate, a.EndDate)
		if err != nil {
			return err
		}
		if clash {
			return ErrAssignmentOverlap
		}
	}
	const qInsert = `INSERT INTO room_assignments (id, bed_id, bedroom_id, location_id, start_date, end_date, notes)
	                 VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, qInsert, a.ID, a.BedID, a.BedroomID, a.LocationID, a.StartDate, a.EndDate, a.Notes); err != nil {
		return err
	}
	if err := replaceProfilesTx(ctx, tx, a.ID, profileIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	fresh, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = *fresh
	return nil
}

// Update rewrites every editable field and replaces the occupant set,
// all inside one transaction, overlap-checked like Create.
func (r *AssignmentRepo) Update(ctx context.Context, a *model.Assignment, profileIDs []string, allowOverlap bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if !allowOverlap {
		clash, err := overlapExistsTx(ctx, tx, a.BedID, a.ID, a.StartDate, a.EndDate)
		if err != nil {
			return err
		}
		if clash {
			return ErrAssignmentOverlap
		}
	}
	const q = `UPDATE room_assignments
	           SET bed_id = ?, bedroom_id = ?, location_id = ?, start_date = ?, end_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, a.BedID, a.BedroomID, a.LocationID, a.StartDate, a.EndDate, a.Notes, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is zero both for a missing row and for a no-op
		// update, so confirm existence before reporting not found.
		var exists string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM room_assignments WHERE id = ?`, a.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAssignmentNotFound
			}
			return err
		}
	}
	if err := replaceProfilesTx(ctx, tx, a.ID, profileIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	fresh, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = *fresh
	return nil
}

// UpdateDates persists a resize: only the date bounds move, the
// occupant set is untouched.  Overlap-checked in the same transaction.
func (r *AssignmentRepo) UpdateDates(ctx context.Context, id, bedID, startDate, endDate string, allowOverlap bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if !allowOverlap {
		clash, err := overlapExistsTx(ctx, tx, bedID, id, startDate, endDate)
		if err != nil {
			return err
		}
		if clash {
			return ErrAssignmentOverlap
		}
	}
	const q = `UPDATE room_assignments
	           SET start_date = ?, end_date = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, startDate, endDate, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is zero both for a missing row and for a no-op
		// update, so confirm existence before reporting not found.
		var exists string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM room_assignments WHERE id = ?`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAssignmentNotFound
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes an assignment and its join rows in one transaction.
// The freed profiles reappear in the available-occupant pool on the
// next fetch.
func (r *AssignmentRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_assignment_profiles WHERE assignment_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM room_assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
