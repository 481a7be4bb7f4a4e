package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/repository"
)

// CatalogHandler bundles the repositories behind the reference-data
// CRUD surface: events, crew members, equipment and positions.
type CatalogHandler struct {
	EventRepo      *repository.EventRepo
	CrewMemberRepo *repository.CrewMemberRepo
	EquipmentRepo  *repository.EquipmentRepo
	PositionRepo   *repository.PositionRepo
}

// NewCatalogHandler constructs a CatalogHandler and panics if any
// dependency is nil.
func NewCatalogHandler(events *repository.EventRepo, crew *repository.CrewMemberRepo,
	equipment *repository.EquipmentRepo, positions *repository.PositionRepo) *CatalogHandler {
	if events == nil || crew == nil || equipment == nil || positions == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{
		EventRepo:      events,
		CrewMemberRepo: crew,
		EquipmentRepo:  equipment,
		PositionRepo:   positions,
	}
}

// validDate reports whether s is a "2006-01-02" calendar date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CreateEvent handles POST /v1/events.
func (h *CatalogHandler) CreateEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body struct {
		Name       string  `json:"name"`
		Date       string  `json:"date"`
		StartTime  *string `json:"start_time"`
		EndTime    *string `json:"end_time"`
		LoadIn     *string `json:"load_in"`
		LoadOut    *string `json:"load_out"`
		Venue      *string `json:"venue"`
		CostCenter *string `json:"cost_center"`
		Status     *string `json:"status"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || !validDate(body.Date) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and date (YYYY-MM-DD) are required"})
	}
	status := "scheduled"
	if body.Status != nil {
		if !model.EventStatuses[*body.Status] {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid status"})
		}
		status = *body.Status
	}
	e := &model.Event{
		Name:       strings.TrimSpace(body.Name),
		Date:       body.Date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		LoadIn:     body.LoadIn,
		LoadOut:    body.LoadOut,
		Venue:      body.Venue,
		CostCenter: body.CostCenter,
		Status:     status,
		Notes:      body.Notes,
		CreatedBy:  &userID,
	}
	if err := h.EventRepo.Create(c.Request().Context(), e); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

// ListEvents handles GET /v1/events with optional from/to date bounds.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	var start, end *string
	if v := c.QueryParam("from"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid from date"})
		}
		start = &v
	}
	if v := c.QueryParam("to"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid to date"})
		}
		end = &v
	}
	events, err := h.EventRepo.List(c.Request().Context(), start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /v1/events/:id.
func (h *CatalogHandler) GetEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	e, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

// UpdateEvent handles PATCH /v1/events/:id. Supplied fields replace
// the stored values; omitted fields are kept.
func (h *CatalogHandler) UpdateEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	cur, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	var body struct {
		Name       *string `json:"name"`
		Date       *string `json:"date"`
		StartTime  *string `json:"start_time"`
		EndTime    *string `json:"end_time"`
		LoadIn     *string `json:"load_in"`
		LoadOut    *string `json:"load_out"`
		Venue      *string `json:"venue"`
		CostCenter *string `json:"cost_center"`
		Status     *string `json:"status"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Date != nil {
		if !validDate(*body.Date) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid date"})
		}
		cur.Date = *body.Date
	}
	if body.Status != nil {
		if !model.EventStatuses[*body.Status] {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid status"})
		}
		cur.Status = *body.Status
	}
	// Empty string clears a nullable column, any other value replaces it.
	mergeOptional(&cur.StartTime, body.StartTime)
	mergeOptional(&cur.EndTime, body.EndTime)
	mergeOptional(&cur.LoadIn, body.LoadIn)
	mergeOptional(&cur.LoadOut, body.LoadOut)
	mergeOptional(&cur.Venue, body.Venue)
	mergeOptional(&cur.CostCenter, body.CostCenter)
	mergeOptional(&cur.Notes, body.Notes)
	if err := h.EventRepo.Update(c.Request().Context(), cur); err != nil {
		return serviceError(c, err)
	}
	fresh, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, fresh)
}

// DeleteEvent handles DELETE /v1/events/:id. The cascading foreign
// keys remove the event's assignments with it.
func (h *CatalogHandler) DeleteEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.EventRepo.Delete(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// mergeOptional applies one optional string field: nil keeps the
// current value, empty clears, anything else replaces.
func mergeOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	s := strings.TrimSpace(*src)
	if s == "" {
		*dst = nil
		return
	}
	*dst = &s
}
