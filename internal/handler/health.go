package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/geometria-api/internal/middleware"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/deppfellow/geometria-api/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that load balancers and uptime
// monitors use to verify the service is alive and computing correctly.
type HealthHandler struct {
	Handler
	services *service.Services
}

func NewHealthHandler(s *server.Server, services *service.Services) *HealthHandler {
	return &HealthHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CheckHealth returns the service status and the calculator self-check.
//
// It returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"version":     h.server.Config.API.Version,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	calcStart := time.Now()
	if err := h.services.Geometry.SelfCheck(ctx); err != nil {
		checks["calculator"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(calcStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(calcStart)).
			Msg("calculator health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "calculator",
				"operation":        "health_check",
				"response_time_ms": time.Since(calcStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}
	} else {
		checks["calculator"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(calcStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
