package grid

import (
	"errors"
	"time"
)

// Edges of an assignment block a resize can grab.
const (
	EdgeLeft  = "left"
	EdgeRight = "right"
)

// ErrBadEdge is returned when a resize names neither edge.
var ErrBadEdge = errors.New("resize edge must be \"left\" or \"right\"")

// DefaultSpanDays is the span a freshly dropped profile gets: one week,
// inclusive of the drop date.
const DefaultSpanDays = 7

// DraftDates computes the staged date range for a create intent dropped
// on the given date: the drop date itself plus six more days.
func DraftDates(drop time.Time) (start, end time.Time) {
	start = truncate(drop)
	return start, start.AddDate(0, 0, DefaultSpanDays-1)
}

// Resize moves one edge of an inclusive [start, end] range by a whole
// number of days and clamps so the bounds never cross: a left resize
// may not move start past end minus one day, and a right resize may not
// move end before start plus one day.  The untouched edge is returned
// unchanged.
func Resize(start, end time.Time, edge string, dayDelta int) (time.Time, time.Time, error) {
	start, end = truncate(start), truncate(end)
	switch edge {
	case EdgeLeft:
		next := start.AddDate(0, 0, dayDelta)
		if limit := end.AddDate(0, 0, -1); next.After(limit) {
			next = limit
		}
		return next, end, nil
	case EdgeRight:
		next := end.AddDate(0, 0, dayDelta)
		if limit := start.AddDate(0, 0, 1); next.Before(limit) {
			next = limit
		}
		return start, next, nil
	default:
		return start, end, ErrBadEdge
	}
}
