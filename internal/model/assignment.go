package model

import "time"

// DateFormat is the wire and storage format for assignment dates.
// Dates carry no time component; all comparisons happen on parsed
// local dates.
const DateFormat = "2006-01-02"

// Assignment places one or more profiles into a bed for an inclusive
// date range.  It maps to the `room_assignments` table.  The bedroom
// and location references are denormalized copies of the bed's owners
// so the grid and edit panel never need extra lookups.
//
// Invariant: StartDate <= EndDate (both inclusive).  Overlapping
// assignments on the same bed are rejected at write time unless the
// caller explicitly forces the overlap (mid-stay room changes).
//
// Fields:
//  ID         – UUID primary key.
//  BedID      – bed being occupied.
//  BedroomID  – denormalized owning bedroom.
//  LocationID – denormalized owning location.
//  StartDate  – first occupied date (yyyy-MM-dd).
//  EndDate    – last occupied date, inclusive (yyyy-MM-dd).
//  Notes      – optional free text.
//  Profiles   – occupants, loaded from the join table.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Assignment struct {
	ID         string     `json:"id"`              // room_assignments.id
	BedID      string     `json:"bed_id"`          // room_assignments.bed_id
	BedroomID  string     `json:"bedroom_id"`      // room_assignments.bedroom_id
	LocationID string     `json:"location_id"`     // room_assignments.location_id
	StartDate  string     `json:"start_date"`      // room_assignments.start_date (yyyy-MM-dd)
	EndDate    string     `json:"end_date"`        // room_assignments.end_date (yyyy-MM-dd, inclusive)
	Notes      *string    `json:"notes,omitempty"` // room_assignments.notes (nullable)
	Profiles   []*Profile `json:"profiles"`        // joined via room_assignment_profiles
	CreatedAt  time.Time  `json:"created_at"`      // room_assignments.created_at
	UpdatedAt  time.Time  `json:"updated_at"`      // room_assignments.updated_at
}

// AssignmentProfile is one row of the `room_assignment_profiles` join
// table.  Edits replace the full set for an assignment rather than
// diffing it.
type AssignmentProfile struct {
	AssignmentID string `json:"assignment_id"` // room_assignment_profiles.assignment_id
	ProfileID    string `json:"profile_id"`    // room_assignment_profiles.profile_id
}

// AssignmentDraft is a staged create intent produced by dropping a
// profile onto a bed cell.  Drafts live in Redis under an opaque token
// with a short TTL and are never written to the primary database;
// confirming the edit panel turns a draft into a real assignment.
//
// Fields:
//  Token      – opaque nanoid handed to the client.
//  ProfileID  – profile that was dragged.
//  BedID      – drop target bed.
//  BedroomID  – bed's owning bedroom.
//  LocationID – bed's owning location.
//  StartDate  – the drop date (yyyy-MM-dd).
//  EndDate    – StartDate + 6 days, the hard one-week default span.
//  CreatedAt  – when the intent was staged.
type AssignmentDraft struct {
	Token      string    `json:"token"`
	ProfileID  string    `json:"profile_id"`
	BedID      string    `json:"bed_id"`
	BedroomID  string    `json:"bedroom_id"`
	LocationID string    `json:"location_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}
