package handler

import (
	"errors"   // sentinel comparisons against repository errors
	"log"      // logging persistence failures
	"net/http" // HTTP status codes
	"strings"  // input trimming
	"time"     // event timestamps

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/queue"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
	queue_publisher "github.com/VennityVlad/zuitzerland-59-sub000/internal/service"
)

// AssignmentHandler implements the edit panel's write surface: create,
// full edit, resize and delete, plus the raw snapshot read.  Every
// write that touches the assignment row and its occupant join rows
// runs in a single repository transaction; a committed write publishes
// a domain event, and a publish failure never fails the request.
type AssignmentHandler struct {
	AssignmentRepo *repository.AssignmentRepo // assignment persistence
	BedRepo        *repository.BedRepo        // bed validation for writes
	BedroomRepo    *repository.BedroomRepo    // authoritative owner chain
	DraftRepo      *repository.DraftRepo      // staged intents consumed on save
}

// NewAssignmentHandler constructs an AssignmentHandler and panics on nil deps.
func NewAssignmentHandler(assignmentRepo *repository.AssignmentRepo, bedRepo *repository.BedRepo, bedroomRepo *repository.BedroomRepo, draftRepo *repository.DraftRepo) *AssignmentHandler {
	if assignmentRepo == nil || bedRepo == nil || bedroomRepo == nil || draftRepo == nil {
		panic("nil repository passed to NewAssignmentHandler")
	}
	return &AssignmentHandler{AssignmentRepo: assignmentRepo, BedRepo: bedRepo, BedroomRepo: bedroomRepo, DraftRepo: draftRepo}
}

// assignmentBody is the edit panel's save payload for both create and
// full edit.
type assignmentBody struct {
	ProfileIDs   []string `json:"profile_ids"`
	LocationID   string   `json:"location_id"`
	BedroomID    string   `json:"bedroom_id"`
	BedID        string   `json:"bed_id"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Notes        *string  `json:"notes"`
	AllowOverlap bool     `json:"allow_overlap"`
	IntentToken  string   `json:"intent_token"`
}

// validate enforces the edit panel's required fields before anything
// touches the database: at least one profile, a location, a bed and a
// valid date range.  It returns the parsed dates on success.
func (b *assignmentBody) validate() (start, end time.Time, err error) {
	profiles := make([]string, 0, len(b.ProfileIDs))
	for _, id := range b.ProfileIDs {
		if id = strings.TrimSpace(id); id != "" {
			profiles = append(profiles, id)
		}
	}
	b.ProfileIDs = profiles
	b.LocationID = strings.TrimSpace(b.LocationID)
	b.BedroomID = strings.TrimSpace(b.BedroomID)
	b.BedID = strings.TrimSpace(b.BedID)
	if len(b.ProfileIDs) == 0 || b.LocationID == "" || b.BedID == "" || b.StartDate == "" || b.EndDate == "" {
		return start, end, errors.New("missing information: profile, location, bed and date range are required")
	}
	if start, err = grid.ParseDate(b.StartDate); err != nil {
		return start, end, errors.New("start_date must be yyyy-MM-dd")
	}
	if end, err = grid.ParseDate(b.EndDate); err != nil {
		return start, end, errors.New("end_date must be yyyy-MM-dd")
	}
	if end.Before(start) {
		return start, end, errors.New("end_date must not be before start_date")
	}
	return start, end, nil
}

// resolveBed loads the drop-target bed and its owner chain so the
// persisted bedroom/location references always come from the catalog,
// not from the client payload.
func (h *AssignmentHandler) resolveBed(c echo.Context, bedID string) (*model.Bed, *model.Bedroom, error) {
	bed, err := h.BedRepo.GetByID(c.Request().Context(), bedID)
	if err != nil {
		return nil, nil, err
	}
	bedroom, err := h.BedroomRepo.GetByID(c.Request().Context(), bed.BedroomID)
	if err != nil {
		return nil, nil, err
	}
	return bed, bedroom, nil
}

// List handles GET /v1/assignments: the raw snapshot for a window,
// profiles attached.  The grid endpoint serves the resolved view; this
// one feeds the edit panel and external consumers.
func (h *AssignmentHandler) List(c echo.Context) error {
	w, err := windowFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid window: dates must be yyyy-MM-dd"})
	}
	items, err := h.AssignmentRepo.ListOverlappingWindow(c.Request().Context(), grid.FormatDate(w.Start), grid.FormatDate(w.End()))
	if err != nil {
		log.Printf("assignments: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load assignments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/assignments/:id.
func (h *AssignmentHandler) Get(c echo.Context) error {
	a, err := h.AssignmentRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /v1/assignments, the edit panel's save for a new
// assignment (usually prefilled from a staged intent).  Validation
// happens before any database call; the insert and the join rows
// commit atomically; a consumed intent token is discarded afterwards.
func (h *AssignmentHandler) Create(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body assignmentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, _, err := body.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	bed, bedroom, err := h.resolveBed(c, body.BedID)
	if err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	a := &model.Assignment{
		BedID:      bed.ID,
		BedroomID:  bedroom.ID,
		LocationID: bedroom.LocationID,
		StartDate:  body.StartDate,
		EndDate:    body.EndDate,
		Notes:      optional(body.Notes),
	}
	if err := h.AssignmentRepo.Create(c.Request().Context(), a, body.ProfileIDs, body.AllowOverlap); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "bed already assigned for part of that date range"})
		}
		log.Printf("assignments: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create assignment"})
	}

	if body.IntentToken != "" {
		if err := h.DraftRepo.Discard(c.Request().Context(), body.IntentToken); err != nil {
			log.Printf("assignments: discarding intent %s failed: %v", body.IntentToken, err)
		}
	}
	h.publish(c, queue.ActionCreated, a, actorID)
	return c.JSON(http.StatusCreated, a)
}

// Update handles PATCH /v1/assignments/:id, the edit panel's save for
// an existing assignment.  The occupant set is replaced wholesale in
// the same transaction as the row update.
func (h *AssignmentHandler) Update(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body assignmentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, _, err := body.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	bed, bedroom, err := h.resolveBed(c, body.BedID)
	if err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	a := &model.Assignment{
		ID:         c.Param("id"),
		BedID:      bed.ID,
		BedroomID:  bedroom.ID,
		LocationID: bedroom.LocationID,
		StartDate:  body.StartDate,
		EndDate:    body.EndDate,
		Notes:      optional(body.Notes),
	}
	if err := h.AssignmentRepo.Update(c.Request().Context(), a, body.ProfileIDs, body.AllowOverlap); err != nil {
		switch {
		case errors.Is(err, repository.ErrAssignmentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "bed already assigned for part of that date range"})
		}
		log.Printf("assignments: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update assignment"})
	}
	h.publish(c, queue.ActionUpdated, a, actorID)
	return c.JSON(http.StatusOK, a)
}

// Resize handles PATCH /v1/assignments/:id/resize.  The client
// converts pixel deltas to whole days; the service recomputes the
// grabbed edge, clamps so the bounds never cross, persists through the
// overlap-checked path and returns the final dates so the client can
// reconcile its optimistic state.
func (h *AssignmentHandler) Resize(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Edge         string `json:"edge"`
		DayDelta     int    `json:"day_delta"`
		AllowOverlap bool   `json:"allow_overlap"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	a, err := h.AssignmentRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	start, err := grid.ParseDate(a.StartDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stored dates are malformed"})
	}
	end, err := grid.ParseDate(a.EndDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stored dates are malformed"})
	}

	newStart, newEnd, err := grid.Resize(start, end, body.Edge, body.DayDelta)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	a.StartDate = grid.FormatDate(newStart)
	a.EndDate = grid.FormatDate(newEnd)

	if err := h.AssignmentRepo.UpdateDates(c.Request().Context(), a.ID, a.BedID, a.StartDate, a.EndDate, body.AllowOverlap); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "bed already assigned for part of that date range"})
		}
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			// Deleted between the load above and the write.
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		log.Printf("assignments: resize failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not resize assignment"})
	}
	h.publish(c, queue.ActionUpdated, a, actorID)
	return c.JSON(http.StatusOK, echo.Map{
		"id":         a.ID,
		"start_date": a.StartDate,
		"end_date":   a.EndDate,
	})
}

// Delete handles DELETE /v1/assignments/:id.  The freed profiles show
// up again in the available sidebar on the next occupants fetch.
func (h *AssignmentHandler) Delete(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	a, err := h.AssignmentRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.AssignmentRepo.Delete(c.Request().Context(), a.ID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
		}
		log.Printf("assignments: delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete assignment"})
	}
	h.publish(c, queue.ActionDeleted, a, actorID)
	return c.NoContent(http.StatusNoContent)
}

// publish emits an assignment event; failures are logged and ignored
// because the write already committed.
func (h *AssignmentHandler) publish(c echo.Context, action string, a *model.Assignment, actorID string) {
	profileIDs := make([]string, 0, len(a.Profiles))
	for _, p := range a.Profiles {
		profileIDs = append(profileIDs, p.ID)
	}
	_ = queue_publisher.PublishAssignmentEvent(c.Request().Context(), queue.AssignmentEvent{
		Action:       action,
		AssignmentID: a.ID,
		BedID:        a.BedID,
		BedroomID:    a.BedroomID,
		LocationID:   a.LocationID,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		ProfileIDs:   profileIDs,
		ActorID:      actorID,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})
}
