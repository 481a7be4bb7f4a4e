package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/model"
	"github.com/avelhart/crewcall/internal/queue"
	"github.com/avelhart/crewcall/internal/repository"
	"github.com/avelhart/crewcall/internal/service"
)

// publishEquipmentCreated emits a broker event for one created
// equipment assignment, off the request path.
func (h *AssignmentHandler) publishEquipmentCreated(ctx context.Context, d *model.EquipmentAssignmentDetail) {
	event, err := h.EventRepo.GetByID(ctx, d.EventID)
	if err != nil {
		return
	}
	qty := d.Quantity
	msg := queue.AssignmentCreatedEvent{
		MessageID:    uuid.NewString(),
		Kind:         "equipment",
		AssignmentID: d.ID,
		EventID:      event.ID,
		EventName:    event.Name,
		EventDate:    event.Date,
		ResourceID:   d.EquipmentID,
		ResourceName: d.EquipmentName,
		Quantity:     &qty,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue.PublishAssignmentCreated(context.Background(), msg) }()
}

// CreateEquipmentAssignment handles POST /v1/events/:id/equipment.
func (h *AssignmentHandler) CreateEquipmentAssignment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	var body struct {
		EquipmentID  uint64   `json:"equipment_id"`
		Quantity     *int     `json:"quantity"`
		RateOverride *float64 `json:"rate_override"`
		Notes        *string  `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.EquipmentID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "equipment_id is required"})
	}
	if body.RateOverride != nil && *body.RateOverride < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "rate_override must not be negative"})
	}
	d, err := h.Assignments.CreateEquipmentAssignment(c.Request().Context(), service.CreateEquipmentAssignmentInput{
		EventID:      eventID,
		EquipmentID:  body.EquipmentID,
		Quantity:     body.Quantity,
		RateOverride: body.RateOverride,
		Notes:        body.Notes,
		CreatedBy:    &userID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	h.publishEquipmentCreated(c.Request().Context(), d)
	return c.JSON(http.StatusCreated, d)
}

// ListEquipmentAssignments handles GET /v1/events/:id/equipment.
func (h *AssignmentHandler) ListEquipmentAssignments(c echo.Context) error {
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	out, err := h.Assignments.ListEquipmentAssignments(c.Request().Context(), eventID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateEquipmentAssignment handles PATCH /v1/assignments/equipment/:id
// with the same three-state field semantics as the crew update.
func (h *AssignmentHandler) UpdateEquipmentAssignment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Quantity     *int            `json:"quantity"`
		RateOverride json.RawMessage `json:"rate_override"`
		Notes        *string         `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	rate, ok := optFromRateRaw(body.RateOverride)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid rate_override"})
	}
	u := repository.EquipmentAssignmentUpdate{
		RateOverride: rate,
		Notes:        optFromString(body.Notes),
	}
	if body.Quantity != nil {
		u.Quantity = repository.OptInt{Set: true, Value: *body.Quantity}
	}
	d, err := h.Assignments.UpdateEquipmentAssignment(c.Request().Context(), id, u)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// DeleteEquipmentAssignment handles DELETE /v1/assignments/equipment/:id.
func (h *AssignmentHandler) DeleteEquipmentAssignment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Assignments.DeleteEquipmentAssignment(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
