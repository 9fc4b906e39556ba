package repository

import (
	"context"
	"database/sql"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// CatalogRepo loads the full Location → Bedroom → Bed tree the grid
// renders its rows from.  The whole tree is loaded in three bulk
// queries assembled in memory, so load cost does not scale with the
// number of locations.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo constructs a CatalogRepo with the given DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// Load returns every location with its bedrooms and beds attached,
// each level ordered by name.  Any query failure aborts the whole
// load; partial trees are never returned.
func (r *CatalogRepo) Load(ctx context.Context) ([]*model.CatalogLocation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tree []*model.CatalogLocation
	byLocation := make(map[string]*model.CatalogLocation)
	for rows.Next() {
		var l model.Location
		if err := scanLocation(rows, &l); err != nil {
			return nil, err
		}
		node := &model.CatalogLocation{Location: l, Bedrooms: []*model.CatalogBedroom{}}
		tree = append(tree, node)
		byLocation[l.ID] = node
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	brRows, err := r.db.QueryContext(ctx, `SELECT `+bedroomColumns+` FROM bedrooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer brRows.Close()

	byBedroom := make(map[string]*model.CatalogBedroom)
	for brRows.Next() {
		var b model.Bedroom
		if err := scanBedroom(brRows, &b); err != nil {
			return nil, err
		}
		parent, ok := byLocation[b.LocationID]
		if !ok {
			continue // orphan row, location vanished between queries
		}
		node := &model.CatalogBedroom{Bedroom: b, Beds: []*model.Bed{}}
		parent.Bedrooms = append(parent.Bedrooms, node)
		byBedroom[b.ID] = node
	}
	if err := brRows.Err(); err != nil {
		return nil, err
	}

	bedRows, err := r.db.QueryContext(ctx, `SELECT `+bedColumns+` FROM beds ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer bedRows.Close()

	for bedRows.Next() {
		b := new(model.Bed)
		if err := scanBed(bedRows, b); err != nil {
			return nil, err
		}
		if parent, ok := byBedroom[b.BedroomID]; ok {
			parent.Beds = append(parent.Beds, b)
		}
	}
	if err := bedRows.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}
