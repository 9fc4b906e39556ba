package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrTeamNotFound is returned when a team lookup fails.
var ErrTeamNotFound = errors.New("team not found")

// TeamRepo provides CRUD over the `teams` table.
type TeamRepo struct {
	db *sql.DB
}

// NewTeamRepo constructs a TeamRepo with the given DB handle.
func NewTeamRepo(db *sql.DB) *TeamRepo { return &TeamRepo{db: db} }

const teamColumns = `id, name, logo_url, created_at, updated_at`

func scanTeam(row interface{ Scan(...any) error }, t *model.Team) error {
	return row.Scan(&t.ID, &t.Name, &t.LogoURL, &t.CreatedAt, &t.UpdatedAt)
}

// Create inserts a team and reads the row back for timestamps.
func (r *TeamRepo) Create(ctx context.Context, t *model.Team) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO teams (id, name, logo_url) VALUES (?, ?, ?)`, t.ID, t.Name, t.LogoURL); err != nil {
		return err
	}
	const qSelect = `SELECT ` + teamColumns + ` FROM teams WHERE id = ?`
	return scanTeam(r.db.QueryRowContext(ctx, qSelect, t.ID), t)
}

// GetByID fetches one team, returning ErrTeamNotFound on a miss.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	const q = `SELECT ` + teamColumns + ` FROM teams WHERE id = ?`
	var t model.Team
	if err := scanTeam(r.db.QueryRowContext(ctx, q, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all teams ordered by name.
func (r *TeamRepo) List(ctx context.Context) ([]*model.Team, error) {
	const q = `SELECT ` + teamColumns + ` FROM teams ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Team
	for rows.Next() {
		t := new(model.Team)
		if err := scanTeam(rows, t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists name edits.
func (r *TeamRepo) Update(ctx context.Context, t *model.Team) error {
	const q = `UPDATE teams SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows covers both a missing team and a no-op update.
		return r.exists(ctx, t.ID)
	}
	return nil
}

// SetLogoURL stores the public URL of a freshly uploaded team logo.
func (r *TeamRepo) SetLogoURL(ctx context.Context, id, url string) error {
	const q = `UPDATE teams SET logo_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, url, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.exists(ctx, id)
	}
	return nil
}

func (r *TeamRepo) exists(ctx context.Context, id string) error {
	var found string
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM teams WHERE id = ?`, id).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTeamNotFound
		}
		return err
	}
	return nil
}

// Delete removes a team and detaches its profiles (team_id set NULL)
// in one transaction, so no profile is left pointing at a missing team.
func (r *TeamRepo) Delete(ctx context.Context, id string) error {
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

	if _, err = tx.ExecContext(ctx, `UPDATE profiles SET team_id = NULL WHERE team_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrTeamNotFound
	}
	return err
}
