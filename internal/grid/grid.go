package grid

import (
	"sort"
	"time"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// Cell kinds.  An Empty cell is a droppable target, a Block cell is the
// first visible date of an assignment and carries the span, and a
// Covered cell sits under an earlier block and renders nothing.
const (
	CellEmpty   = "empty"
	CellBlock   = "block"
	CellCovered = "covered"
)

// Occupant is the subset of a profile shown inside a grid block.
type Occupant struct {
	ProfileID string  `json:"profile_id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	TeamID    *string `json:"team_id,omitempty"`
	TeamColor string  `json:"team_color"`
}

// Cell is one (bed, date) slot of the grid.
//
// For Block cells, Span is how many columns the block covers inside the
// window.  ContinuesBefore/ContinuesAfter replace the respective resize
// handle with a non-interactive indicator when the true start or end of
// the assignment lies outside the visible window.
type Cell struct {
	Date            string     `json:"date"`
	Kind            string     `json:"kind"`
	AssignmentID    string     `json:"assignment_id,omitempty"`
	Span            int        `json:"span,omitempty"`
	Occupants       []Occupant `json:"occupants,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	ContinuesBefore bool       `json:"continues_before,omitempty"`
	ContinuesAfter  bool       `json:"continues_after,omitempty"`
}

// Row is one bed of the grid.  LocationLabel and BedroomLabel are only
// set on the first row of their visual group; later rows of the same
// group leave them empty, simulating a rowspan.
type Row struct {
	LocationID    string `json:"location_id"`
	LocationLabel string `json:"location_label,omitempty"`
	BedroomID     string `json:"bedroom_id"`
	BedroomLabel  string `json:"bedroom_label,omitempty"`
	BedID         string `json:"bed_id"`
	BedLabel      string `json:"bed_label"`
	BedType       string `json:"bed_type"`
	Cells         []Cell `json:"cells"`
}

// Grid is the fully resolved view for one window.
type Grid struct {
	Start string   `json:"start"`
	Days  int      `json:"days"`
	Dates []string `json:"dates"`
	Rows  []Row    `json:"rows"`
}

// span ties a parsed assignment to its bed for cell resolution.
type span struct {
	assignment *model.Assignment
	start      time.Time
	end        time.Time
}

// Build resolves the grid for the given catalog tree, assignment
// snapshot and window.  Assignments whose dates fail to parse are
// skipped rather than failing the whole build; the repository only
// writes well-formed dates, so a bad row is legacy data.
//
// Rows appear in catalog order (locations, bedrooms and beds each
// ordered by name upstream).  Several assignments can cover the same
// cell when an overlap was forced; the earliest-starting one wins,
// with the ID as tie break, so rendering stays deterministic.
func Build(catalog []*model.CatalogLocation, assignments []*model.Assignment, w Window) *Grid {
	byBed := make(map[string][]span)
	for _, a := range assignments {
		s, err := ParseDate(a.StartDate)
		if err != nil {
			continue
		}
		e, err := ParseDate(a.EndDate)
		if err != nil {
			continue
		}
		byBed[a.BedID] = append(byBed[a.BedID], span{assignment: a, start: s, end: e})
	}
	for _, spans := range byBed {
		sort.Slice(spans, func(i, j int) bool {
			if !spans[i].start.Equal(spans[j].start) {
				return spans[i].start.Before(spans[j].start)
			}
			return spans[i].assignment.ID < spans[j].assignment.ID
		})
	}

	dates := w.Dates()
	wire := make([]string, len(dates))
	for i, d := range dates {
		wire[i] = FormatDate(d)
	}

	g := &Grid{Start: FormatDate(w.Start), Days: w.Days, Dates: wire}
	for _, loc := range catalog {
		locLabelPending := true
		for _, br := range loc.Bedrooms {
			brLabelPending := true
			for _, bed := range br.Beds {
				row := Row{
					LocationID: loc.ID,
					BedroomID:  br.ID,
					BedID:      bed.ID,
					BedLabel:   bed.Name,
					BedType:    bed.BedType,
					Cells:      buildCells(byBed[bed.ID], dates, w),
				}
				if locLabelPending {
					row.LocationLabel = loc.Name
					locLabelPending = false
				}
				if brLabelPending {
					row.BedroomLabel = br.Name
					brLabelPending = false
				}
				g.Rows = append(g.Rows, row)
			}
		}
	}
	return g
}

// buildCells walks the window dates for one bed and emits a cell per
// date.  A block is emitted at the first visible date of its
// assignment: the assignment's start date when it falls inside the
// window, otherwise the window's first column with a continues_before
// marker.
func buildCells(spans []span, dates []time.Time, w Window) []Cell {
	cells := make([]Cell, 0, len(dates))
	for i, d := range dates {
		sp, ok := covering(spans, d)
		if !ok {
			cells = append(cells, Cell{Date: FormatDate(d), Kind: CellEmpty})
			continue
		}
		visibleStart := sp.start
		if visibleStart.Before(w.Start) {
			visibleStart = w.Start
		}
		if !d.Equal(visibleStart) {
			cells = append(cells, Cell{Date: FormatDate(d), Kind: CellCovered, AssignmentID: sp.assignment.ID})
			continue
		}
		length := daysBetween(d, sp.end) + 1 // inclusive end
		remaining := w.Days - i
		spanCols := length
		if spanCols > remaining {
			spanCols = remaining
		}
		cells = append(cells, Cell{
			Date:            FormatDate(d),
			Kind:            CellBlock,
			AssignmentID:    sp.assignment.ID,
			Span:            spanCols,
			Occupants:       occupantsOf(sp.assignment),
			Notes:           sp.assignment.Notes,
			ContinuesBefore: sp.start.Before(w.Start),
			ContinuesAfter:  sp.end.After(w.End()),
		})
	}
	return cells
}

// covering returns the winning span containing d, if any.  Spans are
// pre-sorted by start date then ID, so the first hit is the winner.
func covering(spans []span, d time.Time) (span, bool) {
	for _, sp := range spans {
		if !d.Before(sp.start) && !d.After(sp.end) {
			return sp, true
		}
	}
	return span{}, false
}

func occupantsOf(a *model.Assignment) []Occupant {
	out := make([]Occupant, 0, len(a.Profiles))
	for _, p := range a.Profiles {
		o := Occupant{
			ProfileID: p.ID,
			FullName:  p.FullName,
			Email:     p.Email,
			AvatarURL: p.AvatarURL,
			TeamID:    p.TeamID,
		}
		if p.TeamID != nil {
			o.TeamColor = TeamColor(*p.TeamID)
		} else {
			o.TeamColor = TeamColor(NoTeamGroupID)
		}
		out = append(out, o)
	}
	return out
}
