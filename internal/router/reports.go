package router

import (
	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/handler"
	"github.com/avelhart/crewcall/internal/middleware"
)

// RegisterReports registers the read-only report endpoints under /v1.
// Reports are open to any authenticated role. The optional cache
// middleware (nil to disable) is applied to these routes only, since
// they are the expensive aggregate queries.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "SCHEDULER", "CREW"),
	}
	if cache != nil {
		mws = append(mws, cache)
	}
	g := e.Group("/v1", mws...)

	g.GET("/reports/availability", h.CrewAvailability)
	g.GET("/reports/costs", h.CostReport)
	g.GET("/reports/schedule", h.CrewSchedule)
	g.GET("/events/:id/costs", h.EventCostSummary)
}
