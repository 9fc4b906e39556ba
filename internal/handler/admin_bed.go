package handler // handler package contains admin catalog handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/model"
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/repository"
)

// CreateBed handles POST /v1/beds.  Bed types are free form text
// (single, twin, double, queen, king, bunk, sofa, ...), so nothing is
// validated beyond presence of the required fields.
func (h *AdminHandler) CreateBed(c echo.Context) error {
	var body struct {
		BedroomID   string  `json:"bedroom_id"`  // required parent
		Name        string  `json:"name"`        // required label
		BedType     string  `json:"bed_type"`    // free form type
		Description *string `json:"description"` // optional free text
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.BedroomID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and bedroom_id are required"})
	}
	if _, err := h.BedroomRepo.GetByID(c.Request().Context(), strings.TrimSpace(body.BedroomID)); err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	b := &model.Bed{
		BedroomID:   strings.TrimSpace(body.BedroomID),
		Name:        strings.TrimSpace(body.Name),
		BedType:     strings.TrimSpace(body.BedType),
		Description: optional(body.Description),
	}
	if err := h.BedRepo.Create(c.Request().Context(), b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create bed"})
	}
	return c.JSON(http.StatusCreated, b)
}

// ListBedsInBedroom handles GET /v1/bedrooms/:id/beds, the last level
// of the dependent dropdown chain.
func (h *AdminHandler) ListBedsInBedroom(c echo.Context) error {
	bedroomID := c.Param("id")
	if _, err := h.BedroomRepo.GetByID(c.Request().Context(), bedroomID); err != nil {
		if errors.Is(err, repository.ErrBedroomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bedroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.BedRepo.ListByBedroom(c.Request().Context(), bedroomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBed handles GET /v1/beds/:id.
func (h *AdminHandler) GetBed(c echo.Context) error {
	b, err := h.BedRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateBed handles PATCH /v1/beds/:id.
func (h *AdminHandler) UpdateBed(c echo.Context) error {
	cur, err := h.BedRepo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body struct {
		Name        *string `json:"name"`
		BedType     *string `json:"bed_type"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.BedType != nil {
		cur.BedType = strings.TrimSpace(*body.BedType)
	}
	if body.Description != nil {
		cur.Description = optional(body.Description)
	}
	if err := h.BedRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteBed handles DELETE /v1/beds/:id.  Any assignments on the bed
// are removed in the same transaction, so their occupants return to
// the available pool.
func (h *AdminHandler) DeleteBed(c echo.Context) error {
	if err := h.BedRepo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBedNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bed not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
