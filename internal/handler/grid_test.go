package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
)

func queryContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestWindowFromQuery_Defaults(t *testing.T) {
	w, err := windowFromQuery(queryContext("/v1/grid"))
	require.NoError(t, err)
	require.Equal(t, grid.DefaultDays, w.Days)
	require.Equal(t, grid.FormatDate(time.Now()), grid.FormatDate(w.Start))
}

func TestWindowFromQuery_StartAndDays(t *testing.T) {
	w, err := windowFromQuery(queryContext("/v1/grid?start=2025-05-01&days=10"))
	require.NoError(t, err)
	require.Equal(t, "2025-05-01", grid.FormatDate(w.Start))
	require.Equal(t, 10, w.Days)
	require.Equal(t, "2025-05-10", grid.FormatDate(w.End()))
}

func TestWindowFromQuery_WeekParamWins(t *testing.T) {
	w, err := windowFromQuery(queryContext("/v1/grid?week=2025-05-07&start=2025-01-01&days=30"))
	require.NoError(t, err)
	require.Equal(t, "2025-05-05", grid.FormatDate(w.Start))
	require.Equal(t, 7, w.Days)
}

func TestWindowFromQuery_RejectsBadInput(t *testing.T) {
	for _, target := range []string{
		"/v1/grid?start=05/01/2025",
		"/v1/grid?week=not-a-date",
		"/v1/grid?days=0",
		"/v1/grid?days=-3",
		"/v1/grid?days=400",
		"/v1/grid?days=ten",
	} {
		_, err := windowFromQuery(queryContext(target))
		require.Error(t, err, "target %s", target)
	}
}
