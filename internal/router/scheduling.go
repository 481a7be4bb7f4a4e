package router

// Scheduling routes cover the catalog CRUD (events, crew, equipment,
// positions) and the assignment engine. Writes are restricted to the
// ADMIN and SCHEDULER roles; any authenticated role may read.

import (
	"github.com/labstack/echo/v4"

	"github.com/avelhart/crewcall/internal/handler"
	"github.com/avelhart/crewcall/internal/middleware"
)

// RegisterScheduling registers the catalog and assignment endpoints
// under /v1.
func RegisterScheduling(e *echo.Echo, cat *handler.CatalogHandler, asg *handler.AssignmentHandler, jwtSecret string) {
	read := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "SCHEDULER", "CREW"),
	)
	write := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "SCHEDULER"),
	)

	// ---- Events ----
	write.POST("/events", cat.CreateEvent)
	read.GET("/events", cat.ListEvents)
	read.GET("/events/:id", cat.GetEvent)
	write.PATCH("/events/:id", cat.UpdateEvent)
	write.PUT("/events/:id", cat.UpdateEvent) // alias for clients that use PUT
	write.DELETE("/events/:id", cat.DeleteEvent)

	// ---- Crew members ----
	write.POST("/crew", cat.CreateCrewMember)
	read.GET("/crew", cat.ListCrewMembers)
	read.GET("/crew/:id", cat.GetCrewMember)
	write.PATCH("/crew/:id", cat.UpdateCrewMember)
	write.DELETE("/crew/:id", cat.DeleteCrewMember)

	// ---- Equipment ----
	write.POST("/equipment", cat.CreateEquipment)
	read.GET("/equipment", cat.ListEquipment)
	read.GET("/equipment/:id", cat.GetEquipment)
	write.PATCH("/equipment/:id", cat.UpdateEquipment)
	write.DELETE("/equipment/:id", cat.DeleteEquipment)

	// ---- Positions ----
	write.POST("/positions", cat.CreatePosition)
	read.GET("/positions", cat.ListPositions)
	write.PATCH("/positions/:id", cat.UpdatePosition)
	write.DELETE("/positions/:id", cat.DeletePosition)

	// ---- Crew assignments ----
	write.POST("/events/:id/crew", asg.CreateCrewAssignment)
	write.POST("/events/:id/crew/bulk", asg.BulkCreateCrewAssignments)
	read.GET("/events/:id/crew", asg.ListCrewAssignments)
	write.PATCH("/assignments/crew/:id", asg.UpdateCrewAssignment)
	write.DELETE("/assignments/crew/:id", asg.DeleteCrewAssignment)

	// ---- Equipment assignments ----
	write.POST("/events/:id/equipment", asg.CreateEquipmentAssignment)
	read.GET("/events/:id/equipment", asg.ListEquipmentAssignments)
	write.PATCH("/assignments/equipment/:id", asg.UpdateEquipmentAssignment)
	write.DELETE("/assignments/equipment/:id", asg.DeleteEquipmentAssignment)
}
