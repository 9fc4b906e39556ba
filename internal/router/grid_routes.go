package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/handler"    // grid and assignment handlers
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/middleware" // JWT + role middlewares
)

// RegisterGrid registers the assignment grid surface under /v1.  Both
// staff roles can read the grid and move people around; catalog
// structure changes are the admin router's business.  Grid reads are
// deliberately not response-cached: every drop or resize must show up
// on the next fetch.
func RegisterGrid(e *echo.Echo, g *handler.GridHandler, i *handler.IntentHandler, a *handler.AssignmentHandler, jwtSecret string) {
	r := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "STAFF"),
	)

	// ---- Grid ----
	r.GET("/grid", g.GetGrid)
	r.GET("/grid/occupants", g.GetOccupants)

	// ---- Placement intents (staged drops) ----
	r.POST("/grid/intents", i.Stage)
	r.GET("/grid/intents/:token", i.Get)
	r.DELETE("/grid/intents/:token", i.Discard)

	// ---- Assignments ----
	r.GET("/assignments", a.List)
	r.POST("/assignments", a.Create)
	r.GET("/assignments/:id", a.Get)
	r.PATCH("/assignments/:id", a.Update)
	r.PATCH("/assignments/:id/resize", a.Resize)
	r.DELETE("/assignments/:id", a.Delete)
}
