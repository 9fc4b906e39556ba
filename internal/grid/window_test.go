package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
)

func TestNewWindow_DefaultsAndTruncation(t *testing.T) {
	noon := time.Date(2025, 5, 7, 12, 30, 0, 0, time.Local)
	w := grid.NewWindow(noon, 0)

	require.Equal(t, grid.DefaultDays, w.Days)
	require.Equal(t, "2025-05-07", grid.FormatDate(w.Start))
	require.Equal(t, "2025-06-05", grid.FormatDate(w.End()))
}

func TestWeekOf_AlwaysStartsOnMonday(t *testing.T) {
	cases := map[string]string{
		"2025-05-05": "2025-05-05", // Monday maps to itself
		"2025-05-07": "2025-05-05", // Wednesday
		"2025-05-11": "2025-05-05", // Sunday stays in the same week
		"2025-05-12": "2025-05-12", // next Monday
	}
	for in, want := range cases {
		w := grid.WeekOf(day(in))
		require.Equal(t, want, grid.FormatDate(w.Start), "week of %s", in)
		require.Equal(t, 7, w.Days)
		require.Equal(t, time.Monday, w.Start.Weekday())
	}
}

func TestWindowContains_InclusiveBounds(t *testing.T) {
	w := grid.NewWindow(day("2025-05-01"), 10)

	require.True(t, w.Contains(day("2025-05-01")))
	require.True(t, w.Contains(day("2025-05-10")))
	require.False(t, w.Contains(day("2025-04-30")))
	require.False(t, w.Contains(day("2025-05-11")))
}

func TestWindowDates_ConsecutiveRun(t *testing.T) {
	w := grid.NewWindow(day("2025-05-30"), 4)
	dates := w.Dates()

	require.Len(t, dates, 4)
	require.Equal(t, "2025-05-30", grid.FormatDate(dates[0]))
	require.Equal(t, "2025-05-31", grid.FormatDate(dates[1]))
	require.Equal(t, "2025-06-01", grid.FormatDate(dates[2]))
	require.Equal(t, "2025-06-02", grid.FormatDate(dates[3]))
}

func TestParseDate_RejectsOtherFormats(t *testing.T) {
	for _, bad := range []string{"05/01/2025", "2025-5-1", "2025-05-01T00:00:00Z", ""} {
		_, err := grid.ParseDate(bad)
		require.Error(t, err, "input %q", bad)
	}
}
