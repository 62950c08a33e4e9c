// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/geometria-api/internal/handler"
	"github.com/deppfellow/geometria-api/internal/middleware"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the middleware chain and every
// route registered.
//
// Order matters: the request ID must exist before tracing and the
// request-scoped logger read it, and the logger must exist before the
// request logger and recovery write with it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.RateLimit.Limiter(),
	)

	registerSystemRoutes(router, h)
	registerGeometryRoutes(router, h)

	return router
}
