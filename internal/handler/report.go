package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/service"
)

// ReportHandler exposes the read-only reports.
type ReportHandler struct {
	Reports *service.ReportService
}

// NewReportHandler constructs a ReportHandler and panics if the
// service is nil.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	if reports == nil {
		panic("nil service passed to NewReportHandler")
	}
	return &ReportHandler{Reports: reports}
}

// CrewAvailability handles GET /v1/reports/availability?from=&to=.
// Both bounds are required; the report is meaningless without a
// window.
func (h *ReportHandler) CrewAvailability(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if !validDate(from) || !validDate(to) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "from and to (YYYY-MM-DD) are required"})
	}
	if to < from {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "to must not precede from"})
	}
	out, err := h.Reports.CrewAvailability(c.Request().Context(), from, to)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// EventCostSummary handles GET /v1/events/:id/costs.
func (h *ReportHandler) EventCostSummary(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	out, err := h.Reports.EventCostSummary(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// CostReport handles GET /v1/reports/costs?from=&to=&cost_center=.
// All filters are optional.
func (h *ReportHandler) CostReport(c echo.Context) error {
	var from, to, costCenter *string
	if v := c.QueryParam("from"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid from date"})
		}
		from = &v
	}
	if v := c.QueryParam("to"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid to date"})
		}
		to = &v
	}
	if v := c.QueryParam("cost_center"); v != "" {
		costCenter = &v
	}
	out, err := h.Reports.CostReport(c.Request().Context(), from, to, costCenter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// CrewSchedule handles GET /v1/reports/schedule?from=&to=&crew_member_id=.
// With no from date the window opens at today.
func (h *ReportHandler) CrewSchedule(c echo.Context) error {
	var from, to *string
	var memberID *uint64
	if v := c.QueryParam("from"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid from date"})
		}
		from = &v
	}
	if v := c.QueryParam("to"); v != "" {
		if !validDate(v) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid to date"})
		}
		to = &v
	}
	if v := c.QueryParam("crew_member_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid crew_member_id"})
		}
		memberID = &n
	}
	out, err := h.Reports.CrewScheduleReport(c.Request().Context(), from, to, memberID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
