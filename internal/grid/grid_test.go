package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

func day(s string) time.Time {
	d, err := grid.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func lodgeCatalog() []*model.CatalogLocation {
	return []*model.CatalogLocation{
		{
			Location: model.Location{ID: "loc-1", Name: "Alpine Lodge", Type: model.LocationTypeApartment},
			Bedrooms: []*model.CatalogBedroom{
				{
					Bedroom: model.Bedroom{ID: "room-1", LocationID: "loc-1", Name: "Room 1"},
					Beds: []*model.Bed{
						{ID: "bed-a", BedroomID: "room-1", Name: "Bed A", BedType: "single"},
						{ID: "bed-b", BedroomID: "room-1", Name: "Bed B", BedType: "double"},
					},
				},
			},
		},
	}
}

func assignment(id, bedID, start, end string, profiles ...*model.Profile) *model.Assignment {
	return &model.Assignment{
		ID:         id,
		BedID:      bedID,
		BedroomID:  "room-1",
		LocationID: "loc-1",
		StartDate:  start,
		EndDate:    end,
		Profiles:   profiles,
	}
}

func TestBuild_BlockSpanAndCoveredCells(t *testing.T) {
	teamID := "team-42"
	alice := &model.Profile{ID: "p-1", FullName: "Alice", Email: "alice@example.com", TeamID: &teamID}
	bob := &model.Profile{ID: "p-2", FullName: "Bob", Email: "bob@example.com"}

	w := grid.NewWindow(day("2025-05-01"), 10)
	g := grid.Build(lodgeCatalog(), []*model.Assignment{
		assignment("a-1", "bed-a", "2025-05-03", "2025-05-09", alice, bob),
	}, w)

	require.Equal(t, "2025-05-01", g.Start)
	require.Equal(t, 10, g.Days)
	require.Len(t, g.Dates, 10)
	require.Len(t, g.Rows, 2)

	row := g.Rows[0]
	require.Equal(t, "Bed A", row.BedLabel)
	require.Len(t, row.Cells, 10)

	require.Equal(t, grid.CellEmpty, row.Cells[0].Kind)
	require.Equal(t, grid.CellEmpty, row.Cells[1].Kind)

	block := row.Cells[2]
	require.Equal(t, grid.CellBlock, block.Kind)
	require.Equal(t, "2025-05-03", block.Date)
	require.Equal(t, "a-1", block.AssignmentID)
	require.Equal(t, 7, block.Span)
	require.False(t, block.ContinuesBefore)
	require.False(t, block.ContinuesAfter)
	require.Len(t, block.Occupants, 2)
	require.Equal(t, grid.TeamColor("team-42"), block.Occupants[0].TeamColor)
	require.Equal(t, grid.TeamColor(grid.NoTeamGroupID), block.Occupants[1].TeamColor)

	for i := 3; i <= 8; i++ {
		require.Equal(t, grid.CellCovered, row.Cells[i].Kind, "cell %d", i)
		require.Equal(t, "a-1", row.Cells[i].AssignmentID)
	}
	require.Equal(t, grid.CellEmpty, row.Cells[9].Kind)

	// The other bed stays fully empty.
	for _, cell := range g.Rows[1].Cells {
		require.Equal(t, grid.CellEmpty, cell.Kind)
	}
}

func TestBuild_RowLabelsOnlyOnFirstRowOfGroup(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 7)
	g := grid.Build(lodgeCatalog(), nil, w)

	require.Equal(t, "Alpine Lodge", g.Rows[0].LocationLabel)
	require.Equal(t, "Room 1", g.Rows[0].BedroomLabel)
	require.Empty(t, g.Rows[1].LocationLabel)
	require.Empty(t, g.Rows[1].BedroomLabel)
}

func TestBuild_TruncatesAtWindowStart(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 10)
	g := grid.Build(lodgeCatalog(), []*model.Assignment{
		assignment("a-1", "bed-a", "2025-04-28", "2025-05-05"),
	}, w)

	block := g.Rows[0].Cells[0]
	require.Equal(t, grid.CellBlock, block.Kind)
	require.Equal(t, "2025-05-01", block.Date)
	require.Equal(t, 5, block.Span)
	require.True(t, block.ContinuesBefore)
	require.False(t, block.ContinuesAfter)
}

func TestBuild_TruncatesAtWindowEnd(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 10)
	g := grid.Build(lodgeCatalog(), []*model.Assignment{
		assignment("a-1", "bed-a", "2025-05-08", "2025-05-20"),
	}, w)

	block := g.Rows[0].Cells[7]
	require.Equal(t, grid.CellBlock, block.Kind)
	require.Equal(t, 3, block.Span)
	require.False(t, block.ContinuesBefore)
	require.True(t, block.ContinuesAfter)
}

func TestBuild_AdjacentAssignmentsOnOneBed(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 6)
	g := grid.Build(lodgeCatalog(), []*model.Assignment{
		assignment("a-2", "bed-a", "2025-05-03", "2025-05-04"),
		assignment("a-1", "bed-a", "2025-05-01", "2025-05-02"),
	}, w)

	cells := g.Rows[0].Cells
	require.Equal(t, grid.CellBlock, cells[0].Kind)
	require.Equal(t, "a-1", cells[0].AssignmentID)
	require.Equal(t, 2, cells[0].Span)
	require.Equal(t, grid.CellCovered, cells[1].Kind)
	require.Equal(t, grid.CellBlock, cells[2].Kind)
	require.Equal(t, "a-2", cells[2].AssignmentID)
	require.Equal(t, 2, cells[2].Span)
	require.Equal(t, grid.CellCovered, cells[3].Kind)
	require.Equal(t, grid.CellEmpty, cells[4].Kind)
	require.Equal(t, grid.CellEmpty, cells[5].Kind)
}

func TestBuild_SkipsMalformedDates(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 5)
	g := grid.Build(lodgeCatalog(), []*model.Assignment{
		assignment("a-bad", "bed-a", "05/01/2025", "2025-05-03"),
	}, w)

	for _, cell := range g.Rows[0].Cells {
		require.Equal(t, grid.CellEmpty, cell.Kind)
	}
}
