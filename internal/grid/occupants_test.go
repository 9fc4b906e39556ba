package grid_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

func TestAvailableOccupants_ExcludesAssignedAndGroupsByTeam(t *testing.T) {
	builders := "team-builders"
	profiles := []*model.Profile{
		{ID: "p-1", FullName: "Alice", TeamID: &builders},
		{ID: "p-2", FullName: "Bob", TeamID: &builders},
		{ID: "p-3", FullName: "Zoe"},
	}
	teams := []*model.Team{{ID: builders, Name: "Builders"}}
	assignments := []*model.Assignment{
		{ID: "a-1", BedID: "bed-a", Profiles: []*model.Profile{{ID: "p-2"}}},
	}

	groups := grid.AvailableOccupants(profiles, assignments, teams)
	require.Len(t, groups, 2)

	require.Equal(t, builders, groups[0].TeamID)
	require.Equal(t, "Builders", groups[0].TeamName)
	require.Len(t, groups[0].Occupants, 1)
	require.Equal(t, "Alice", groups[0].Occupants[0].FullName)

	// Teamless profiles collect under the sentinel group, always last.
	require.Equal(t, grid.NoTeamGroupID, groups[1].TeamID)
	require.Equal(t, "No team", groups[1].TeamName)
	require.Len(t, groups[1].Occupants, 1)
	require.Equal(t, "Zoe", groups[1].Occupants[0].FullName)
}

func TestAvailableOccupants_SortsOccupantsByName(t *testing.T) {
	team := "team-1"
	profiles := []*model.Profile{
		{ID: "p-1", FullName: "Carol", TeamID: &team},
		{ID: "p-2", FullName: "Alice", TeamID: &team},
		{ID: "p-3", FullName: "Bob", TeamID: &team},
	}
	groups := grid.AvailableOccupants(profiles, nil, []*model.Team{{ID: team, Name: "One"}})

	require.Len(t, groups, 1)
	names := []string{}
	for _, o := range groups[0].Occupants {
		names = append(names, o.FullName)
	}
	require.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
}

func TestTeamColor_DeterministicHexColor(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)

	first := grid.TeamColor("team-42")
	require.Regexp(t, hex, first)
	require.Equal(t, first, grid.TeamColor("team-42"))

	require.Regexp(t, hex, grid.TeamColor(grid.NoTeamGroupID))
	require.Regexp(t, hex, grid.TeamColor(""))
}

func TestTeamColor_NegativeHashStillIndexesPalette(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)

	// Long and high-codepoint identifiers overflow the 32-bit
	// accumulator into negative values; every input must still land
	// on a palette entry.
	ids := []string{
		strings.Repeat("z", 64),
		strings.Repeat("団体", 32),
		"fffffff0-ffff-ffff-ffff-fffffffffff0",
	}
	for _, id := range ids {
		require.Regexp(t, hex, grid.TeamColor(id), "id %q", id)
	}
}
