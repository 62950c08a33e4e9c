package router

import (
	"github.com/deppfellow/geometria-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not calculations:
// API metadata, health and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Info.GetInfo)

	// Health status endpoint (used by load balancers and monitors).
	r.GET("/status", h.Health.CheckHealth)

	r.GET(handler.DocsPath, h.OpenAPI.ServeOpenAPIUI)
	r.GET(handler.DocsJSONPath, h.OpenAPI.ServeOpenAPIDocument)
}
