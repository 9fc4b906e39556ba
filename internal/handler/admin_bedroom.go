package handler // handler package contains admin catalog handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// CreateBedroom handles POST /v1/bedrooms.  The parent location must
// already exist; the edit panel's dependent dropdowns rely on that
// ordering.
func (h *AdminHandler) CreateBedroom(c echo.Context) error {
	var body struct {
		LocationID  string  `json:"location_id"` // required parent
		Name        string  `json:"name"`        // required label
		Description *string `json:"description"` // optional free text
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.LocationID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location_id are required"})
	}
	if _, err := h.LocationRepo.GetByID(c.Request().Context(), strings.TrimSpace(body.LocationID)); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	b := &model.Bedroom{
		LocationID:  strings.TrimSpace(body.LocationID),
		Name:        strings.TrimSpace(body.Name),
		Description: optional(body.Description),
	}
	if err := h.BedroomRepo.Create(c.Request().Context(), b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create bedroom"})
	}
	return c.JSON(http.StatusCreated, b)
}

// ListBedroomsInLocation handles GET /v1/locations/:id/bedrooms, the
// second level of the dependent dropdown chain.
func (h *AdminHandler) ListBedroomsInLocation(c echo.Context) error {
	locationID := c.Param("id")
	if _, err := h.LocationRepo.GetByID(c.Request().Context(), locationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.BedroomRepo.ListByLocation(c.Request().Context(), locationID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBedroom handles GET /v1/bedrooms/:id.
func (h *AdminHandler) GetBedroom(c echo.Context) error {
	b, err := h.BedroomRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateBedroom handles PATCH /v1/bedrooms/:id.  The parent location
// is fixed; moving a bedroom between locations is not supported.
func (h *AdminHandler) UpdateBedroom(c echo.Context) error {
	cur, err := h.BedroomRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Description != nil {
		cur.Description = optional(body.Description)
	}
	if err := h.BedroomRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteBedroom handles DELETE /v1/bedrooms/:id.  Beds and their
// assignments go with it.
func (h *AdminHandler) DeleteBedroom(c echo.Context) error {
	if err := h.BedroomRepo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
