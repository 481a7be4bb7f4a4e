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

// AssignmentHandler exposes the assignment engine over HTTP. Creates
// additionally publish an AssignmentCreatedEvent to the broker; a
// publish failure is logged by the publisher and never fails the
// request.
type AssignmentHandler struct {
	Assignments *service.AssignmentService
	EventRepo   *repository.EventRepo
}

// NewAssignmentHandler constructs an AssignmentHandler and panics if
// any dependency is nil.
func NewAssignmentHandler(assignments *service.AssignmentService, events *repository.EventRepo) *AssignmentHandler {
	if assignments == nil || events == nil {
		panic("nil dependency passed to NewAssignmentHandler")
	}
	return &AssignmentHandler{Assignments: assignments, EventRepo: events}
}

// publishCrewCreated emits a broker event for one created crew
// assignment. Runs in its own goroutine so the broker never sits on
// the request path.
func (h *AssignmentHandler) publishCrewCreated(ctx context.Context, d *model.CrewAssignmentDetail) {
	event, err := h.EventRepo.GetByID(ctx, d.EventID)
	if err != nil {
		return
	}
	msg := queue.AssignmentCreatedEvent{
		MessageID:    uuid.NewString(),
		Kind:         "crew",
		AssignmentID: d.ID,
		EventID:      event.ID,
		EventName:    event.Name,
		EventDate:    event.Date,
		ResourceID:   d.CrewMemberID,
		ResourceName: d.CrewName,
		Position:     d.PositionName,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue.PublishAssignmentCreated(context.Background(), msg) }()
}

// CreateCrewAssignment handles POST /v1/events/:id/crew.
func (h *AssignmentHandler) CreateCrewAssignment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	var body struct {
		CrewMemberID uint64   `json:"crew_member_id"`
		PositionID   *uint64  `json:"position_id"`
		CallTime     *string  `json:"call_time"`
		EndTime      *string  `json:"end_time"`
		RateOverride *float64 `json:"rate_override"`
		Notes        *string  `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.CrewMemberID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crew_member_id is required"})
	}
	if body.RateOverride != nil && *body.RateOverride < 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "rate_override must not be negative"})
	}
	d, err := h.Assignments.CreateCrewAssignment(c.Request().Context(), service.CreateCrewAssignmentInput{
		EventID:      eventID,
		CrewMemberID: body.CrewMemberID,
		PositionID:   body.PositionID,
		CallTime:     body.CallTime,
		EndTime:      body.EndTime,
		RateOverride: body.RateOverride,
		Notes:        body.Notes,
		CreatedBy:    &userID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	h.publishCrewCreated(c.Request().Context(), d)
	return c.JSON(http.StatusCreated, d)
}

// BulkCreateCrewAssignments handles POST /v1/events/:id/crew/bulk.
// The response always carries the full outcome: assigned count,
// silently skipped duplicates and per-member errors.
func (h *AssignmentHandler) BulkCreateCrewAssignments(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	var body struct {
		CrewMemberIDs []uint64 `json:"crew_member_ids"`
		PositionID    *uint64  `json:"position_id"`
		CallTime      *string  `json:"call_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if len(body.CrewMemberIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crew_member_ids is required"})
	}
	res, err := h.Assignments.BulkCreateCrewAssignments(c.Request().Context(), service.BulkCreateCrewInput{
		EventID:       eventID,
		CrewMemberIDs: body.CrewMemberIDs,
		PositionID:    body.PositionID,
		CallTime:      body.CallTime,
		CreatedBy:     &userID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	for i := range res.Assignments {
		h.publishCrewCreated(c.Request().Context(), &res.Assignments[i])
	}
	return c.JSON(http.StatusOK, res)
}

// ListCrewAssignments handles GET /v1/events/:id/crew.
func (h *AssignmentHandler) ListCrewAssignments(c echo.Context) error {
	eventID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid event id"})
	}
	out, err := h.Assignments.ListCrewAssignments(c.Request().Context(), eventID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateCrewAssignment handles PATCH /v1/assignments/crew/:id. Omitted
// fields are kept; an empty string (or zero position_id) clears the
// column. rate_override takes the same JSON number the create endpoint
// does, plus null or "" to clear the override.
func (h *AssignmentHandler) UpdateCrewAssignment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		PositionID   *uint64         `json:"position_id"`
		CallTime     *string         `json:"call_time"`
		EndTime      *string         `json:"end_time"`
		RateOverride json.RawMessage `json:"rate_override"`
		Status       *string         `json:"status"`
		Notes        *string         `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	rate, ok := optFromRateRaw(body.RateOverride)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid rate_override"})
	}
	u := repository.CrewAssignmentUpdate{
		PositionID:   optFromID(body.PositionID),
		CallTime:     optFromString(body.CallTime),
		EndTime:      optFromString(body.EndTime),
		RateOverride: rate,
		Status:       optFromString(body.Status),
		Notes:        optFromString(body.Notes),
	}
	d, err := h.Assignments.UpdateCrewAssignment(c.Request().Context(), id, u)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// DeleteCrewAssignment handles DELETE /v1/assignments/crew/:id.
func (h *AssignmentHandler) DeleteCrewAssignment(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Assignments.DeleteCrewAssignment(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
