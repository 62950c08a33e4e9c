package handler

import (
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/deppfellow/geometria-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Geometry *GeometryHandler
	Info     *InfoHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Geometry: NewGeometryHandler(s, services),
		Info:     NewInfoHandler(s),
		Health:   NewHealthHandler(s, services),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
