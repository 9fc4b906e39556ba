package model

import "time"

// Profile is a person that can be placed on the grid.  Profiles are
// reference data for this service: they are created during onboarding
// elsewhere and only their team linkage, display name and avatar are
// editable here.  Eligibility for assignment is gated by having at
// least one paid invoice.
//
// Fields:
//  ID                 – UUID primary key, matches the identity provider's
//                       stable user identifier.
//  FullName           – display name shown on grid blocks.
//  Email              – contact email shown on grid blocks.
//  AvatarURL          – optional public URL of the avatar image.
//  TeamID             – optional team linkage used for sidebar grouping.
//  HousingPreferences – optional free form key/value blob (JSON text),
//                       read only in this service.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Profile struct {
	ID                 string    `json:"id"`                            // profiles.id
	FullName           string    `json:"full_name"`                     // profiles.full_name
	Email              string    `json:"email"`                         // profiles.email
	AvatarURL          *string   `json:"avatar_url,omitempty"`          // profiles.avatar_url (nullable)
	TeamID             *string   `json:"team_id,omitempty"`             // profiles.team_id (nullable)
	HousingPreferences *string   `json:"housing_preferences,omitempty"` // profiles.housing_preferences (nullable JSON text)
	CreatedAt          time.Time `json:"created_at"`                    // profiles.created_at
	UpdatedAt          time.Time `json:"updated_at"`                    // profiles.updated_at
}

// Team groups profiles for display purposes.  The display color is not
// stored here: it is derived per render by hashing the team ID against
// a fixed palette (see internal/grid).
//
// Fields:
//  ID        – UUID primary key.
//  Name      – team name.
//  LogoURL   – optional public URL of the team logo.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Team struct {
	ID        string    `json:"id"`                 // teams.id
	Name      string    `json:"name"`               // teams.name
	LogoURL   *string   `json:"logo_url,omitempty"` // teams.logo_url (nullable)
	CreatedAt time.Time `json:"created_at"`         // teams.created_at
	UpdatedAt time.Time `json:"updated_at"`         // teams.updated_at
}

// Invoice records a billing document for a profile.  Rows are written
// only by the invoice webhook relay; this service never generates
// invoices.  A profile with at least one invoice in status
// InvoiceStatusPaid becomes eligible for room assignment.
//
// Fields:
//  ID          – UUID primary key.
//  ProfileID   – profile the invoice belongs to.
//  Status      – provider supplied status string; "paid" gates eligibility.
//  AmountCents – invoice amount in cents.
//  ExternalRef – identifier of the invoice at the external provider.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Invoice struct {
	ID          string    `json:"id"`           // invoices.id
	ProfileID   string    `json:"profile_id"`   // invoices.profile_id
	Status      string    `json:"status"`       // invoices.status
	AmountCents int64     `json:"amount_cents"` // invoices.amount_cents
	ExternalRef string    `json:"external_ref"` // invoices.external_ref
	CreatedAt   time.Time `json:"created_at"`   // invoices.created_at
	UpdatedAt   time.Time `json:"updated_at"`   // invoices.updated_at
}

// InvoiceStatusPaid is the only status this service interprets; all
// other provider statuses are stored verbatim and ignored.
const InvoiceStatusPaid = "paid"
