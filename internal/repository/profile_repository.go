package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// ErrProfileNotFound is returned when a profile lookup fails.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepo provides access to the `profiles` table.  Profiles are
// mostly reference data: onboarding creates them elsewhere, this
// service reads them for the grid and edits only team linkage, display
// name and avatar.
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo constructs a ProfileRepo with the given DB handle.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

var profileColumnList = []string{"id", "full_name", "email", "avatar_url", "team_id", "housing_preferences", "created_at", "updated_at"}

const profileColumns = `id, full_name, email, avatar_url, team_id, housing_preferences, created_at, updated_at`

// prefixedProfileColumns renders the profile column list qualified with
// a table alias, for joins.
func prefixedProfileColumns(alias string) string {
	cols := make([]string, len(profileColumnList))
	for i, c := range profileColumnList {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanProfile(row interface{ Scan(...any) error }, p *model.Profile) error {
	return row.Scan(&p.ID, &p.FullName, &p.Email, &p.AvatarURL, &p.TeamID, &p.HousingPreferences, &p.CreatedAt, &p.UpdatedAt)
}

// GetByID fetches one profile, returning ErrProfileNotFound on a miss.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	var p model.Profile
	if err := scanProfile(r.db.QueryRowContext(ctx, q, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns every profile ordered by full name.
func (r *ProfileRepo) List(ctx context.Context) ([]*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name`
	return r.queryProfiles(ctx, q)
}

// ListEligible returns the deduplicated set of profiles holding at
// least one paid invoice, the pool that may be placed on the grid.
// A single DISTINCT join keeps eligibility a one-query lookup.
func (r *ProfileRepo) ListEligible(ctx context.Context) ([]*model.Profile, error) {
	q := `SELECT DISTINCT ` + prefixedProfileColumns("p") + `
	      FROM profiles p
	      JOIN invoices i ON i.profile_id = p.id
	      WHERE i.status = ?
	      ORDER BY p.full_name`
	return r.queryProfiles(ctx, q, model.InvoiceStatusPaid)
}

func (r *ProfileRepo) queryProfiles(ctx context.Context, q string, args ...any) ([]*model.Profile, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Profile
	for rows.Next() {
		p := new(model.Profile)
		if err := scanProfile(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the editable profile fields: display name and team
// linkage.  Email and housing preferences stay read-only here.
func (r *ProfileRepo) Update(ctx context.Context, p *model.Profile) error {
	const q = `UPDATE profiles SET full_name = ?, team_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, p.FullName, p.TeamID, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows covers both a missing profile and a no-op update.
		return r.exists(ctx, p.ID)
	}
	return nil
}

func (r *ProfileRepo) exists(ctx context.Context, id string) error {
	var found string
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM profiles WHERE id = ?`, id).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

// SetAvatarURL stores the public URL of a freshly uploaded avatar.
func (r *ProfileRepo) SetAvatarURL(ctx context.Context, id, url string) error {
	const q = `UPDATE profiles SET avatar_url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, url, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Re-uploading the same image writes the same URL; zero rows is
		// not proof the profile vanished.
		return r.exists(ctx, id)
	}
	return nil
}
