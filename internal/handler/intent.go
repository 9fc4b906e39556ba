package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// IntentHandler stages create-assignment intents.  Dropping a profile
// on an empty cell POSTs an intent here; the edit panel then loads the
// staged draft, lets the admin adjust it and only the explicit save
// writes an assignment.  Creation is always a deliberate two-step
// confirm, never a direct write from the drop gesture.
type IntentHandler struct {
	DraftRepo   *repository.DraftRepo   // Redis staging area
	BedRepo     *repository.BedRepo     // drop-target validation
	BedroomRepo *repository.BedroomRepo // authoritative owner chain
	ProfileRepo *repository.ProfileRepo // dragged-profile validation
}

// NewIntentHandler constructs an IntentHandler and panics on nil deps.
func NewIntentHandler(draftRepo *repository.DraftRepo, bedRepo *repository.BedRepo, bedroomRepo *repository.BedroomRepo, profileRepo *repository.ProfileRepo) *IntentHandler {
	if draftRepo == nil || bedRepo == nil || bedroomRepo == nil || profileRepo == nil {
		panic("nil repository passed to NewIntentHandler")
	}
	return &IntentHandler{DraftRepo: draftRepo, BedRepo: bedRepo, BedroomRepo: bedroomRepo, ProfileRepo: profileRepo}
}

// Stage handles POST /v1/grid/intents.  The body identifies the
// dragged profile, the drop-target bed and the drop date; the staged
// draft spans one week from that date.  A malformed payload aborts
// with 400 and no state change anywhere.
func (h *IntentHandler) Stage(c echo.Context) error {
	var body struct {
		ProfileID string `json:"profile_id"`
		BedID     string `json:"bed_id"`
		Date      string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid intent payload"})
	}
	body.ProfileID = strings.TrimSpace(body.ProfileID)
	body.BedID = strings.TrimSpace(body.BedID)
	if body.ProfileID == "" || body.BedID == "" || body.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "profile_id, bed_id and date are required"})
	}
	drop, err := grid.ParseDate(body.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be yyyy-MM-dd"})
	}

	ctx := c.Request().Context()
	if _, err := h.ProfileRepo.GetByID(ctx, body.ProfileID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bed, err := h.BedRepo.GetByID(ctx, body.BedID)
	if err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// The owner chain comes from the catalog, not the client, so a
	// stale drop target cannot stage a draft pointing at the wrong room.
	bedroom, err := h.BedroomRepo.GetByID(ctx, bed.BedroomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	start, end := grid.DraftDates(drop)
	draft := &model.AssignmentDraft{
		ProfileID:  body.ProfileID,
		BedID:      bed.ID,
		BedroomID:  bedroom.ID,
		LocationID: bedroom.LocationID,
		StartDate:  grid.FormatDate(start),
		EndDate:    grid.FormatDate(end),
	}
	if err := h.DraftRepo.Stage(ctx, draft); err != nil {
		log.Printf("intent: staging failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to stage assignment draft"})
	}
	return c.JSON(http.StatusCreated, draft)
}

// Get handles GET /v1/grid/intents/:token, the edit panel's prefill
// fetch.  Expired or unknown tokens are a 404.
func (h *IntentHandler) Get(c echo.Context) error {
	draft, err := h.DraftRepo.Get(c.Request().Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "draft not found or expired"})
		}
		log.Printf("intent: load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load draft"})
	}
	return c.JSON(http.StatusOK, draft)
}

// Discard handles DELETE /v1/grid/intents/:token (the edit panel was
// cancelled).  Discarding an expired token succeeds: it is already gone.
func (h *IntentHandler) Discard(c echo.Context) error {
	if err := h.DraftRepo.Discard(c.Request().Context(), c.Param("token")); err != nil {
		log.Printf("intent: discard failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to discard draft"})
	}
	return c.NoContent(http.StatusNoContent)
}
