package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/model"
)

// CreatePosition handles POST /v1/positions.
func (h *CatalogHandler) CreatePosition(c echo.Context) error {
	var body struct {
		Name       string   `json:"name"`
		HourlyRate *float64 `json:"hourly_rate"`
		SortOrder  *int     `json:"sort_order"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if body.HourlyRate != nil && *body.HourlyRate < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "hourly_rate must not be negative"})
	}
	p := &model.Position{
		Name:       strings.TrimSpace(body.Name),
		HourlyRate: body.HourlyRate,
	}
	if body.SortOrder != nil {
		p.SortOrder = *body.SortOrder
	}
	if err := h.PositionRepo.Create(c.Request().Context(), p); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPositions handles GET /v1/positions.
func (h *CatalogHandler) ListPositions(c echo.Context) error {
	positions, err := h.PositionRepo.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, positions)
}

// UpdatePosition handles PATCH /v1/positions/:id.
func (h *CatalogHandler) UpdatePosition(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.PositionRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	var body struct {
		Name       *string  `json:"name"`
		HourlyRate *float64 `json:"hourly_rate"`
		SortOrder  *int     `json:"sort_order"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.HourlyRate != nil {
		if *body.HourlyRate < 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "hourly_rate must not be negative"})
		}
		cur.HourlyRate = body.HourlyRate
	}
	if body.SortOrder != nil {
		cur.SortOrder = *body.SortOrder
	}
	if err := h.PositionRepo.Update(c.Request().Context(), cur); err != nil {
		return serviceError(c, err)
	}
	fresh, err := h.PositionRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeletePosition handles DELETE /v1/positions/:id. Assignments keep
// working; their position reference is set to NULL by the foreign key.
func (h *CatalogHandler) DeletePosition(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.PositionRepo.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
