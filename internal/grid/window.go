// Package grid implements the assignment-grid core: the visible date
// window, per-cell occupancy resolution, resize clamping, team colors
// and the available-occupant sidebar grouping.  Everything in here is
// pure date math over in-memory snapshots; persistence stays in the
// repository layer.
package grid

import (
	"time"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
)

// DefaultDays is the number of consecutive dates shown when the client
// does not ask for a specific span.
const DefaultDays = 30

// Window is a fixed run of consecutive calendar dates starting at
// Start.  Start is always truncated to midnight local time so that
// date-only comparisons behave.
type Window struct {
	Start time.Time
	Days  int
}

// NewWindow builds a window of days consecutive dates starting at
// start.  Non-positive day counts fall back to DefaultDays.
func NewWindow(start time.Time, days int) Window {
	if days <= 0 {
		days = DefaultDays
	}
	return Window{Start: truncate(start), Days: days}
}

// WeekOf returns the Monday–Sunday calendar week containing d.  This is
// the week variant of the grid.
func WeekOf(d time.Time) Window {
	d = truncate(d)
	// time.Weekday counts Sunday as 0; shift so Monday is the first day.
	offset := (int(d.Weekday()) + 6) % 7
	return Window{Start: d.AddDate(0, 0, -offset), Days: 7}
}

// End returns the last visible date of the window (inclusive).
func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, w.Days-1)
}

// Contains reports whether date d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	d = truncate(d)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Dates returns every date in the window in order.
func (w Window) Dates() []time.Time {
	out := make([]time.Time, w.Days)
	for i := 0; i < w.Days; i++ {
		out[i] = w.Start.AddDate(0, 0, i)
	}
	return out
}

// ParseDate parses a yyyy-MM-dd string in local time.  All persisted
// dates use this format; anything else is a client error.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(model.DateFormat, s, time.Local)
}

// FormatDate renders a date back to its yyyy-MM-dd wire form.
func FormatDate(d time.Time) string {
	return d.Format(model.DateFormat)
}

// daysBetween counts whole days from a to b (positive when b is after a).
// The calendar dates are re-anchored in UTC first so DST transitions in
// the local zone cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

func truncate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
