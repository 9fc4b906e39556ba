package handler // handler package contains team management handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/grid"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/storage"
)

// TeamHandler manages teams and their logo uploads.  The Uploader may
// be nil when no object store is configured; only the logo endpoint
// cares.
type TeamHandler struct {
	TeamRepo *repository.TeamRepo // team persistence
	Uploader *storage.Uploader    // optional object store for logos
}

// NewTeamHandler constructs a TeamHandler and panics on a nil repo.
func NewTeamHandler(teamRepo *repository.TeamRepo, uploader *storage.Uploader) *TeamHandler {
	if teamRepo == nil {
		panic("nil repository passed to NewTeamHandler")
	}
	return &TeamHandler{TeamRepo: teamRepo, Uploader: uploader}
}

// teamView augments a team with the color the grid derives from its
// ID, so clients never reimplement the hash.
type teamView struct {
	*model.Team
	Color string `json:"color"`
}

func viewOf(t *model.Team) teamView {
	return teamView{Team: t, Color: grid.TeamColor(t.ID)}
}

// Create handles POST /v1/teams.
func (h *TeamHandler) Create(c echo.Context) error {
	var body struct {
		Name string `json:"name"` // required label
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	t := &model.Team{Name: strings.TrimSpace(body.Name)}
	if err := h.TeamRepo.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create team"})
	}
	return c.JSON(http.StatusCreated, viewOf(t))
}

// List handles GET /v1/teams.
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.TeamRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items := make([]teamView, 0, len(teams))
	for _, t := range teams {
		items = append(items, viewOf(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/teams/:id.
func (h *TeamHandler) Get(c echo.Context) error {
	t, err := h.TeamRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, viewOf(t))
}

// Update handles PATCH /v1/teams/:id.  Renaming never changes the
// color; the color follows the immutable team ID.
func (h *TeamHandler) Update(c echo.Context) error {
	t, err := h.TeamRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		Name *string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		t.Name = strings.TrimSpace(*body.Name)
	}
	if err := h.TeamRepo.Update(c.Request().Context(), t); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, viewOf(t))
}

// Delete handles DELETE /v1/teams/:id.  Members are detached, not
// deleted; they regroup under the "No team" bucket.
func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.TeamRepo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadLogo handles POST /v1/teams/:id/logo with a multipart "file"
// part.  The object key embeds the team ID so re-uploads overwrite.
func (h *TeamHandler) UploadLogo(c echo.Context) error {
	t, err := h.TeamRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "team not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	url, err := uploadImagePart(c, h.Uploader, fmt.Sprintf("teams/%s/logo", t.ID))
	if err != nil {
		return err
	}
	if err := h.TeamRepo.SetLogoURL(c.Request().Context(), t.ID, url); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save logo"})
	}
	t.LogoURL = &url
	return c.JSON(http.StatusOK, viewOf(t))
}

// uploadImagePart reads the multipart "file" part, checks it looks
// like an image and pushes it to the object store under keyPrefix plus
// the original extension.  Errors come back as *echo.HTTPError for the
// caller to return unchanged.
func uploadImagePart(c echo.Context, up *storage.Uploader, keyPrefix string) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", echo.NewHTTPError(http.StatusBadRequest, "file must be an image")
	}
	src, err := fh.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	key := keyPrefix + strings.ToLower(path.Ext(fh.Filename))
	url, err := up.Upload(c.Request().Context(), key, contentType, src)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return "", echo.NewHTTPError(http.StatusServiceUnavailable, "file uploads are not available")
		}
		return "", echo.NewHTTPError(http.StatusInternalServerError, "upload failed")
	}
	return url, nil
}
