package service

import (
	"github.com/deppfellow/geometria-api/internal/server"
)

// Services groups every service of the application.
type Services struct {
	Geometry *GeometryService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Geometry: NewGeometryService(s),
	}
}
