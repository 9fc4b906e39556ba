package grid

import (
	"sort"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// NoTeamGroupID is the sentinel group for profiles without a team.
const NoTeamGroupID = "no-team"

// TeamGroup is one sidebar section of available occupants.
type TeamGroup struct {
	TeamID    string     `json:"team_id"`
	TeamName  string     `json:"team_name"`
	TeamColor string     `json:"team_color"`
	Occupants []Occupant `json:"occupants"`
}

// AvailableOccupants computes the sidebar pool: every eligible profile
// (callers pass the deduplicated paid-invoice set) that is not already
// present in the assignment snapshot, grouped by team with teamless
// profiles collected under the no-team sentinel.  Groups are ordered by
// team name (sentinel last), occupants by full name.
func AvailableOccupants(eligible []*model.Profile, assignments []*model.Assignment, teams []*model.Team) []TeamGroup {
	assigned := make(map[string]struct{})
	for _, a := range assignments {
		for _, p := range a.Profiles {
			assigned[p.ID] = struct{}{}
		}
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	grouped := make(map[string][]Occupant)
	for _, p := range eligible {
		if _, taken := assigned[p.ID]; taken {
			continue
		}
		key := NoTeamGroupID
		if p.TeamID != nil && *p.TeamID != "" {
			key = *p.TeamID
		}
		grouped[key] = append(grouped[key], Occupant{
			ProfileID: p.ID,
			FullName:  p.FullName,
			Email:     p.Email,
			AvatarURL: p.AvatarURL,
			TeamID:    p.TeamID,
			TeamColor: TeamColor(key),
		})
	}

	out := make([]TeamGroup, 0, len(grouped))
	for key, occ := range grouped {
		sort.Slice(occ, func(i, j int) bool { return occ[i].FullName < occ[j].FullName })
		name := teamNames[key]
		if key == NoTeamGroupID {
			name = "No team"
		}
		out = append(out, TeamGroup{TeamID: key, TeamName: name, TeamColor: TeamColor(key), Occupants: occ})
	}
	sort.Slice(out, func(i, j int) bool {
		// sentinel group sinks to the bottom of the sidebar
		if out[i].TeamID == NoTeamGroupID {
			return false
		}
		if out[j].TeamID == NoTeamGroupID {
			return true
		}
		return out[i].TeamName < out[j].TeamName
	})
	return out
}
