package handler // handler package contains admin catalog handlers

import (
	"errors"   // errors package for comparing sentinels
	"net/http" // http defines status code constants
	"strings"  // strings manipulates and trims text

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// AdminHandler bundles the repositories behind the catalog management
// surface: locations, bedrooms and beds.  Profiles and teams get their
// own handlers because their lifecycles are independent of the
// physical hierarchy.
type AdminHandler struct {
	LocationRepo *repository.LocationRepo // location persistence
	BedroomRepo  *repository.BedroomRepo  // bedroom persistence
	BedRepo      *repository.BedRepo      // bed persistence
	CatalogRepo  *repository.CatalogRepo  // nested read of the whole tree
}

// NewAdminHandler constructs an AdminHandler and panics on nil deps.
func NewAdminHandler(locationRepo *repository.LocationRepo, bedroomRepo *repository.BedroomRepo, bedRepo *repository.BedRepo, catalogRepo *repository.CatalogRepo) *AdminHandler {
	if locationRepo == nil || bedroomRepo == nil || bedRepo == nil || catalogRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{LocationRepo: locationRepo, BedroomRepo: bedroomRepo, BedRepo: bedRepo, CatalogRepo: catalogRepo}
}

// GetCatalog handles GET /v1/catalog and returns the full nested
// location → bedroom → bed tree, each level ordered by name.  This is
// the payload the grid's row axis is rendered from.
func (h *AdminHandler) GetCatalog(c echo.Context) error {
	items, err := h.CatalogRepo.Load(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load catalog"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateLocation handles POST /v1/locations.
func (h *AdminHandler) CreateLocation(c echo.Context) error {
	var body struct {
		Name         string  `json:"name"`          // required label
		Building     *string `json:"building"`      // optional building
		Floor        *string `json:"floor"`         // optional floor
		Description  *string `json:"description"`   // optional free text
		MaxOccupancy *int    `json:"max_occupancy"` // optional cap
		Type         string  `json:"type"`          // Apartment / Meeting Room
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if body.MaxOccupancy != nil && *body.MaxOccupancy < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_occupancy must not be negative"})
	}
	l := &model.Location{
		Name:         strings.TrimSpace(body.Name),
		Building:     optional(body.Building),
		Floor:        optional(body.Floor),
		Description:  optional(body.Description),
		MaxOccupancy: body.MaxOccupancy,
		Type:         strings.TrimSpace(body.Type),
	}
	if err := h.LocationRepo.Create(c.Request().Context(), l); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create location"})
	}
	return c.JSON(http.StatusCreated, l)
}

// ListLocations handles GET /v1/locations.
func (h *AdminHandler) ListLocations(c echo.Context) error {
	items, err := h.LocationRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetLocation handles GET /v1/locations/:id.
func (h *AdminHandler) GetLocation(c echo.Context) error {
	l, err := h.LocationRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, l)
}

// UpdateLocation handles PATCH /v1/locations/:id.  Absent fields keep
// their current values; an explicit empty string clears an optional
// field.
func (h *AdminHandler) UpdateLocation(c echo.Context) error {
	cur, err := h.LocationRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		Name         *string `json:"name"`
		Building     *string `json:"building"`
		Floor        *string `json:"floor"`
		Description  *string `json:"description"`
		MaxOccupancy *int    `json:"max_occupancy"`
		Type         *string `json:"type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Building != nil {
		cur.Building = optional(body.Building)
	}
	if body.Floor != nil {
		cur.Floor = optional(body.Floor)
	}
	if body.Description != nil {
		cur.Description = optional(body.Description)
	}
	if body.MaxOccupancy != nil {
		if *body.MaxOccupancy < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "max_occupancy must not be negative"})
		}
		cur.MaxOccupancy = body.MaxOccupancy
	}
	if body.Type != nil && strings.TrimSpace(*body.Type) != "" {
		cur.Type = strings.TrimSpace(*body.Type)
	}
	if err := h.LocationRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteLocation handles DELETE /v1/locations/:id.  The cascade takes
// bedrooms, beds and their assignments with it in one transaction.
func (h *AdminHandler) DeleteLocation(c echo.Context) error {
	if err := h.LocationRepo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
