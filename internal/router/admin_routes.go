package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/VennityVlad/zuitzerland-59-sub000/internal/handler"    // catalog admin handlers
	"github.com/VennityVlad/zuitzerland-59-sub000/internal/middleware" // JWT + role middlewares
)

// RegisterCatalog registers the physical hierarchy endpoints under
// /v1.  Reads are open to both roles because the edit panel's
// dependent dropdowns walk location → bedroom → bed; structural
// changes require ADMIN.  Catalog reads are cached behind auth and
// every catalog write flushes that cache, so the dropdown refetch
// after a create always sees the new row.
func RegisterCatalog(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, cache, invalidate echo.MiddlewareFunc) {
	read := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "STAFF"),
		cache,
	)
	read.GET("/catalog", h.GetCatalog)
	read.GET("/locations", h.ListLocations)
	read.GET("/locations/:id", h.GetLocation)
	read.GET("/locations/:id/bedrooms", h.ListBedroomsInLocation)
	read.GET("/bedrooms/:id", h.GetBedroom)
	read.GET("/bedrooms/:id/beds", h.ListBedsInBedroom)
	read.GET("/beds/:id", h.GetBed)

	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
		invalidate,
	)

	// ---- Locations ----
	admin.POST("/locations", h.CreateLocation)
	admin.PATCH("/locations/:id", h.UpdateLocation)
	admin.DELETE("/locations/:id", h.DeleteLocation)

	// ---- Bedrooms ----
	admin.POST("/bedrooms", h.CreateBedroom)
	admin.PATCH("/bedrooms/:id", h.UpdateBedroom)
	admin.DELETE("/bedrooms/:id", h.DeleteBedroom)

	// ---- Beds ----
	admin.POST("/beds", h.CreateBed)
	admin.PATCH("/beds/:id", h.UpdateBed)
	admin.DELETE("/beds/:id", h.DeleteBed)
}

// RegisterPeople registers team and profile management under /v1.
// Both roles can manage people; deleting a team is ADMIN only because
// it detaches every member.
func RegisterPeople(e *echo.Echo, t *handler.TeamHandler, p *handler.ProfileHandler, jwtSecret string) {
	r := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "STAFF"),
	)

	// ---- Teams ----
	r.GET("/teams", t.List)
	r.POST("/teams", t.Create)
	r.GET("/teams/:id", t.Get)
	r.PATCH("/teams/:id", t.Update)
	r.POST("/teams/:id/logo", t.UploadLogo)

	// ---- Profiles ----
	r.GET("/profiles", p.List)
	r.GET("/profiles/:id", p.Get)
	r.PATCH("/profiles/:id", p.Update)
	r.POST("/profiles/:id/avatar", p.UploadAvatar)
	r.GET("/profiles/:id/invoices", p.ListInvoices)

	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)
	admin.DELETE("/teams/:id", t.Delete)
}
