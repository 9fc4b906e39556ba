package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
)

func TestResize_MovesEdges(t *testing.T) {
	start, end := day("2025-05-03"), day("2025-05-09")

	s, e, err := grid.Resize(start, end, grid.EdgeRight, 3)
	require.NoError(t, err)
	require.Equal(t, "2025-05-03", grid.FormatDate(s))
	require.Equal(t, "2025-05-12", grid.FormatDate(e))

	s, e, err = grid.Resize(start, end, grid.EdgeLeft, -2)
	require.NoError(t, err)
	require.Equal(t, "2025-05-01", grid.FormatDate(s))
	require.Equal(t, "2025-05-09", grid.FormatDate(e))
}

func TestResize_LeftEdgeClampsBeforeEnd(t *testing.T) {
	s, e, err := grid.Resize(day("2025-05-01"), day("2025-05-10"), grid.EdgeLeft, 30)
	require.NoError(t, err)
	require.Equal(t, "2025-05-09", grid.FormatDate(s))
	require.Equal(t, "2025-05-10", grid.FormatDate(e))
}

func TestResize_RightEdgeClampsAfterStart(t *testing.T) {
	s, e, err := grid.Resize(day("2025-05-01"), day("2025-05-10"), grid.EdgeRight, -30)
	require.NoError(t, err)
	require.Equal(t, "2025-05-01", grid.FormatDate(s))
	require.Equal(t, "2025-05-02", grid.FormatDate(e))
}

func TestResize_RejectsUnknownEdge(t *testing.T) {
	_, _, err := grid.Resize(day("2025-05-01"), day("2025-05-10"), "top", 1)
	require.ErrorIs(t, err, grid.ErrBadEdge)
}

func TestDraftDates_WeekLongSpan(t *testing.T) {
	start, end := grid.DraftDates(day("2025-05-03"))
	require.Equal(t, "2025-05-03", grid.FormatDate(start))
	require.Equal(t, "2025-05-09", grid.FormatDate(end))
}
