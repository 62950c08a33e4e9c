package router

import (
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/deppfellow/geometria-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerGeometryRoutes registers one GET route per catalog calculation,
// e.g. /api/Geometria/area/cuadrado.
func registerGeometryRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group(handler.APIPrefix)

	for _, calc := range geometry.Catalog() {
		api.GET(calc.Path(), h.Geometry.Calculate(calc))
	}
}
