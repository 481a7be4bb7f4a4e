package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/model"
)

// CreateEquipment handles POST /v1/equipment.
func (h *CatalogHandler) CreateEquipment(c echo.Context) error {
	var body struct {
		Name              string   `json:"name"`
		Category          *string  `json:"category"`
		DailyRate         *float64 `json:"daily_rate"`
		ReplacementCost   *float64 `json:"replacement_cost"`
		QuantityAvailable *int     `json:"quantity_available"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if body.DailyRate != nil && *body.DailyRate < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "daily_rate must not be negative"})
	}
	qty := 1
	if body.QuantityAvailable != nil {
		if *body.QuantityAvailable < 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "quantity_available must not be negative"})
		}
		qty = *body.QuantityAvailable
	}
	e := &model.Equipment{
		Name:              strings.TrimSpace(body.Name),
		Category:          body.Category,
		DailyRate:         body.DailyRate,
		ReplacementCost:   body.ReplacementCost,
		QuantityAvailable: qty,
		IsActive:          true,
	}
	if err := h.EquipmentRepo.Create(c.Request().Context(), e); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

// ListEquipment handles GET /v1/equipment. Pass ?active=true to
// exclude retired items.
func (h *CatalogHandler) ListEquipment(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	items, err := h.EquipmentRepo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetEquipment handles GET /v1/equipment/:id.
func (h *CatalogHandler) GetEquipment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	e, err := h.EquipmentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

// UpdateEquipment handles PATCH /v1/equipment/:id.
func (h *CatalogHandler) UpdateEquipment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.EquipmentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	var body struct {
		Name              *string  `json:"name"`
		Category          *string  `json:"category"`
		DailyRate         *float64 `json:"daily_rate"`
		ReplacementCost   *float64 `json:"replacement_cost"`
		QuantityAvailable *int     `json:"quantity_available"`
		IsActive          *bool    `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	mergeOptional(&cur.Category, body.Category)
	if body.DailyRate != nil {
		if *body.DailyRate < 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "daily_rate must not be negative"})
		}
		cur.DailyRate = body.DailyRate
	}
	if body.ReplacementCost != nil {
		cur.ReplacementCost = body.ReplacementCost
	}
	if body.QuantityAvailable != nil {
		if *body.QuantityAvailable < 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "quantity_available must not be negative"})
		}
		cur.QuantityAvailable = *body.QuantityAvailable
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}
	if err := h.EquipmentRepo.Update(c.Request().Context(), cur); err != nil {
		return serviceError(c, err)
	}
	fresh, err := h.EquipmentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteEquipment handles DELETE /v1/equipment/:id.
func (h *CatalogHandler) DeleteEquipment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.EquipmentRepo.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
