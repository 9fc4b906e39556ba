package handler // handler package contains profile management handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/storage"
)

// ProfileHandler manages profiles, their team membership, avatar
// uploads and the read side of their invoices.  Profiles themselves
// are provisioned by the identity sync, so there is no create or
// delete here.
type ProfileHandler struct {
	ProfileRepo *repository.ProfileRepo // profile persistence
	TeamRepo    *repository.TeamRepo    // validates team references
	InvoiceRepo *repository.InvoiceRepo // invoice read side
	Uploader    *storage.Uploader       // optional object store for avatars
}

// NewProfileHandler constructs a ProfileHandler and panics on nil repos.
func NewProfileHandler(profileRepo *repository.ProfileRepo, teamRepo *repository.TeamRepo, invoiceRepo *repository.InvoiceRepo, uploader *storage.Uploader) *ProfileHandler {
	if profileRepo == nil || teamRepo == nil || invoiceRepo == nil {
		panic("nil repository passed to NewProfileHandler")
	}
	return &ProfileHandler{ProfileRepo: profileRepo, TeamRepo: teamRepo, InvoiceRepo: invoiceRepo, Uploader: uploader}
}

// List handles GET /v1/profiles, every profile ordered by name.
func (h *ProfileHandler) List(c echo.Context) error {
	items, err := h.ProfileRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/profiles/:id.
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := h.ProfileRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PATCH /v1/profiles/:id.  Only the display name and
// team membership are editable here; email and identity fields belong
// to the external provider.  Sending team_id as an empty string leaves
// the team, sending null (or omitting it) keeps the current one.
func (h *ProfileHandler) Update(c echo.Context) error {
	p, err := h.ProfileRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		FullName *string `json:"full_name"`
		TeamID   *string `json:"team_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.FullName != nil && strings.TrimSpace(*body.FullName) != "" {
		p.FullName = strings.TrimSpace(*body.FullName)
	}
	if body.TeamID != nil {
		if teamID := strings.TrimSpace(*body.TeamID); teamID == "" {
			p.TeamID = nil
		} else {
			if _, err := h.TeamRepo.GetByID(c.Request().Context(), teamID); err != nil {
				if errors.Is(err, repository.ErrTeamNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
			}
			p.TeamID = &teamID
		}
	}
	if err := h.ProfileRepo.Update(c.Request().Context(), p); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// UploadAvatar handles POST /v1/profiles/:id/avatar with a multipart
// "file" part.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	p, err := h.ProfileRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	url, err := uploadImagePart(c, h.Uploader, fmt.Sprintf("profiles/%s/avatar", p.ID))
	if err != nil {
		return err
	}
	if err := h.ProfileRepo.SetAvatarURL(c.Request().Context(), p.ID, url); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save avatar"})
	}
	p.AvatarURL = &url
	return c.JSON(http.StatusOK, p)
}

// ListInvoices handles GET /v1/profiles/:id/invoices, newest first.
// An empty list means the profile has not been invoiced yet and will
// not show up in the available occupants sidebar.
func (h *ProfileHandler) ListInvoices(c echo.Context) error {
	p, err := h.ProfileRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.InvoiceRepo.ListByProfile(c.Request().Context(), p.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
