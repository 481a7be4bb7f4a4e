package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/model"
)

// CreateCrewMember handles POST /v1/crew.
func (h *CatalogHandler) CreateCrewMember(c echo.Context) error {
	var body struct {
		Name       string   `json:"name"`
		Email      string   `json:"email"`
		Phone      *string  `json:"phone"`
		PositionID *uint64  `json:"position_id"`
		HourlyRate *float64 `json:"hourly_rate"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and email are required"})
	}
	if body.HourlyRate != nil && *body.HourlyRate < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "hourly_rate must not be negative"})
	}
	m := &model.CrewMember{
		Name:       strings.TrimSpace(body.Name),
		Email:      body.Email,
		Phone:      body.Phone,
		PositionID: body.PositionID,
		HourlyRate: body.HourlyRate,
		IsActive:   true,
	}
	if err := h.CrewMemberRepo.Create(c.Request().Context(), m); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// ListCrewMembers handles GET /v1/crew. Pass ?active=true to exclude
// deactivated members.
func (h *CatalogHandler) ListCrewMembers(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	members, err := h.CrewMemberRepo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// GetCrewMember handles GET /v1/crew/:id.
func (h *CatalogHandler) GetCrewMember(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	m, err := h.CrewMemberRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateCrewMember handles PATCH /v1/crew/:id.
func (h *CatalogHandler) UpdateCrewMember(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.CrewMemberRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	var body struct {
		Name       *string  `json:"name"`
		Email      *string  `json:"email"`
		Phone      *string  `json:"phone"`
		PositionID *uint64  `json:"position_id"`
		HourlyRate *float64 `json:"hourly_rate"`
		IsActive   *bool    `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Email != nil && strings.TrimSpace(*body.Email) != "" {
		cur.Email = *body.Email
	}
	mergeOptional(&cur.Phone, body.Phone)
	if body.PositionID != nil {
		if *body.PositionID == 0 {
			cur.PositionID = nil
		} else {
			cur.PositionID = body.PositionID
		}
	}
	if body.HourlyRate != nil {
		if *body.HourlyRate < 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "hourly_rate must not be negative"})
		}
		cur.HourlyRate = body.HourlyRate
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}
	if err := h.CrewMemberRepo.Update(c.Request().Context(), cur); err != nil {
		return serviceError(c, err)
	}
	fresh, err := h.CrewMemberRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteCrewMember handles DELETE /v1/crew/:id.
func (h *CatalogHandler) DeleteCrewMember(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.CrewMemberRepo.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
