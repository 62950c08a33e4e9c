package handler

import (
	"net/http"
	"strings"

	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/labstack/echo/v4"
)

// InfoHandler serves the API metadata and endpoint manifest at `/`.
type InfoHandler struct {
	Handler
}

func NewInfoHandler(s *server.Server) *InfoHandler {
	return &InfoHandler{
		Handler: NewHandler(s),
	}
}

// APIInfo is the body returned at `/`.
type APIInfo struct {
	Name          string              `json:"nombre"`
	Version       string              `json:"version"`
	Description   string              `json:"descripcion"`
	Documentation string              `json:"documentacion"`
	Endpoints     map[string][]string `json:"endpoints"`
}

// manifestGroup names the manifest section of each operation.
var manifestGroup = map[geometry.Operation]string{
	geometry.Area:      "areas",
	geometry.Perimeter: "perimetros",
	geometry.Volume:    "volumenes",
}

// EndpointPattern renders a calculation as it appears in the manifest:
//
//	GET /api/Geometria/area/rectangulo?base={valor}&altura={valor}
func EndpointPattern(calc geometry.Calculation) string {
	query := make([]string, len(calc.Params))
	for i, p := range calc.Params {
		query[i] = string(p) + "={valor}"
	}
	return "GET " + APIPrefix + calc.Path() + "?" + strings.Join(query, "&")
}

// Manifest groups every catalog calculation by operation.
func Manifest() map[string][]string {
	endpoints := make(map[string][]string, len(manifestGroup))
	for _, calc := range geometry.Catalog() {
		group := manifestGroup[calc.Operation]
		endpoints[group] = append(endpoints[group], EndpointPattern(calc))
	}
	return endpoints
}

// GetInfo returns the API metadata and the manifest of endpoints.
func (h *InfoHandler) GetInfo(c echo.Context) error {
	api := h.server.Config.API

	return c.JSON(http.StatusOK, APIInfo{
		Name:          api.Name,
		Version:       api.Version,
		Description:   api.Description,
		Documentation: DocsPath,
		Endpoints:     Manifest(),
	})
}
