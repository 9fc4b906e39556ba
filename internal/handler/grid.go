package handler

import (
	"log"      // logging fetch failures before surfacing them
	"net/http" // HTTP status codes
	"strconv"  // parsing the days query parameter
	"time"     // default window start

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// GridHandler serves the resolved assignment grid and the
// available-occupant sidebar.  Both endpoints are reads over the same
// snapshot trio: catalog tree, assignment window, eligible profiles.
type GridHandler struct {
	CatalogRepo    *repository.CatalogRepo    // physical hierarchy for grid rows
	AssignmentRepo *repository.AssignmentRepo // assignment snapshot for cells
	ProfileRepo    *repository.ProfileRepo    // paid-invoice eligibility pool
	TeamRepo       *repository.TeamRepo       // team names for sidebar groups
}

// NewGridHandler constructs a GridHandler and panics if any dependency is nil.
func NewGridHandler(catalogRepo *repository.CatalogRepo, assignmentRepo *repository.AssignmentRepo, profileRepo *repository.ProfileRepo, teamRepo *repository.TeamRepo) *GridHandler {
	if catalogRepo == nil || assignmentRepo == nil || profileRepo == nil || teamRepo == nil {
		panic("nil repository passed to NewGridHandler")
	}
	return &GridHandler{
		CatalogRepo:    catalogRepo,
		AssignmentRepo: assignmentRepo,
		ProfileRepo:    profileRepo,
		TeamRepo:       teamRepo,
	}
}

// windowFromQuery resolves the visible window from query parameters.
// `?week=yyyy-MM-dd` wins and yields the Monday–Sunday week containing
// that date; otherwise `?start=` (default today) and `?days=` (default
// 30) define the run.  A malformed date is a client error.
func windowFromQuery(c echo.Context) (grid.Window, error) {
	if week := c.QueryParam("week"); week != "" {
		d, err := grid.ParseDate(week)
		if err != nil {
			return grid.Window{}, err
		}
		return grid.WeekOf(d), nil
	}
	start := time.Now()
	if s := c.QueryParam("start"); s != "" {
		d, err := grid.ParseDate(s)
		if err != nil {
			return grid.Window{}, err
		}
		start = d
	}
	days := grid.DefaultDays
	if ds := c.QueryParam("days"); ds != "" {
		n, err := strconv.Atoi(ds)
		if err != nil || n <= 0 || n > 366 {
			return grid.Window{}, errBadDays
		}
		days = n
	}
	return grid.NewWindow(start, days), nil
}

var errBadDays = echo.NewHTTPError(http.StatusBadRequest, "days must be a positive number of dates")

// GetGrid handles GET /v1/grid.  It loads the catalog tree and the
// assignment snapshot for the requested window and returns the fully
// resolved grid.  Any fetch failure aborts the whole response; the
// grid is never rendered from a partial tree.
func (h *GridHandler) GetGrid(c echo.Context) error {
	w, err := windowFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid window: dates must be yyyy-MM-dd"})
	}
	ctx := c.Request().Context()

	catalog, err := h.CatalogRepo.Load(ctx)
	if err != nil {
		log.Printf("grid: catalog load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room catalog"})
	}
	assignments, err := h.AssignmentRepo.ListOverlappingWindow(ctx, grid.FormatDate(w.Start), grid.FormatDate(w.End()))
	if err != nil {
		log.Printf("grid: assignment load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load assignments"})
	}
	return c.JSON(http.StatusOK, grid.Build(catalog, assignments, w))
}

// GetOccupants handles GET /v1/grid/occupants: the sidebar pool of
// profiles with a paid invoice that are not yet placed anywhere in the
// requested window, grouped by team.
func (h *GridHandler) GetOccupants(c echo.Context) error {
	w, err := windowFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid window: dates must be yyyy-MM-dd"})
	}
	ctx := c.Request().Context()

	eligible, err := h.ProfileRepo.ListEligible(ctx)
	if err != nil {
		log.Printf("grid: eligible profiles load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load eligible profiles"})
	}
	assignments, err := h.AssignmentRepo.ListOverlappingWindow(ctx, grid.FormatDate(w.Start), grid.FormatDate(w.End()))
	if err != nil {
		log.Printf("grid: assignment load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load assignments"})
	}
	teams, err := h.TeamRepo.List(ctx)
	if err != nil {
		log.Printf("grid: team load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load teams"})
	}
	return c.JSON(http.StatusOK, echo.Map{"groups": grid.AvailableOccupants(eligible, assignments, teams)})
}
