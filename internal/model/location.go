package model

import "time"

// Location is the top level of the physical hierarchy and maps to the
// `locations` table.  A location is either a bookable apartment or a
// meeting room; the Type field carries that tag.  Deleting a location
// cascades to its bedrooms and beds.
//
// Fields:
//  ID           – UUID primary key.
//  Name         – human readable label, unique per deployment in practice.
//  Building     – optional building label.
//  Floor        – optional floor label.
//  Description  – optional free text.
//  MaxOccupancy – optional maximum number of occupants.
//  Type         – "Apartment" or "Meeting Room".
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Location struct {
	ID           string    `json:"id"`                      // locations.id
	Name         string    `json:"name"`                    // locations.name
	Building     *string   `json:"building,omitempty"`      // locations.building (nullable)
	Floor        *string   `json:"floor,omitempty"`         // locations.floor (nullable)
	Description  *string   `json:"description,omitempty"`   // locations.description (nullable)
	MaxOccupancy *int      `json:"max_occupancy,omitempty"` // locations.max_occupancy (nullable)
	Type         string    `json:"type"`                    // locations.type
	CreatedAt    time.Time `json:"created_at"`              // locations.created_at
	UpdatedAt    time.Time `json:"updated_at"`              // locations.updated_at
}

// LocationTypeApartment and LocationTypeMeetingRoom are the two type tags
// the grid understands.  The column itself is free form text, so unknown
// tags pass through untouched.
const (
	LocationTypeApartment   = "Apartment"
	LocationTypeMeetingRoom = "Meeting Room"
)

// Bedroom belongs to exactly one location and maps to the `bedrooms`
// table.  Its lifecycle mirrors the location: it can only be created
// once the location exists and is removed when the location goes away.
//
// Fields:
//  ID          – UUID primary key.
//  LocationID  – owning location.
//  Name        – human readable label, ordered by name in the grid.
//  Description – optional free text.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Bedroom struct {
	ID          string    `json:"id"`                    // bedrooms.id
	LocationID  string    `json:"location_id"`           // bedrooms.location_id
	Name        string    `json:"name"`                  // bedrooms.name
	Description *string   `json:"description,omitempty"` // bedrooms.description (nullable)
	CreatedAt   time.Time `json:"created_at"`            // bedrooms.created_at
	UpdatedAt   time.Time `json:"updated_at"`            // bedrooms.updated_at
}

// Bed is the leaf of the hierarchy and maps to the `beds` table.  Beds
// are what assignments actually reference; each grid row is one bed.
// BedType is free form in practice (single, twin, double, queen, king,
// bunk, sofa, ...) so it is modelled as a plain string rather than a
// closed enum.
//
// Fields:
//  ID          – UUID primary key.
//  BedroomID   – owning bedroom.
//  Name        – human readable label.
//  BedType     – free form bed type string.
//  Description – optional free text.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Bed struct {
	ID          string    `json:"id"`                    // beds.id
	BedroomID   string    `json:"bedroom_id"`            // beds.bedroom_id
	Name        string    `json:"name"`                  // beds.name
	BedType     string    `json:"bed_type"`              // beds.bed_type
	Description *string   `json:"description,omitempty"` // beds.description (nullable)
	CreatedAt   time.Time `json:"created_at"`            // beds.created_at
	UpdatedAt   time.Time `json:"updated_at"`            // beds.updated_at
}

// CatalogBedroom is a bedroom with its beds attached, used when the
// catalog is served as a nested tree.
type CatalogBedroom struct {
	Bedroom
	Beds []*Bed `json:"beds"`
}

// CatalogLocation is a location with its bedrooms (and their beds)
// attached.  The catalog endpoint returns a slice of these, each level
// ordered by name.
type CatalogLocation struct {
	Location
	Bedrooms []*CatalogBedroom `json:"bedrooms"`
}
