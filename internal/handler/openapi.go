package handler

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/deppfellow/geometria-api/internal/openapi"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed static/swagger.html
var swaggerUI string

// OpenAPIHandler serves the OpenAPI document and the Swagger UI page.
//
// The UI is a static HTML page that loads Swagger UI from a CDN and reads
// the document from /swagger.json.
type OpenAPIHandler struct {
	Handler
	document *openapi3.T
}

// NewOpenAPIHandler builds the document once from the catalog and the API
// metadata.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler:  NewHandler(s),
		document: openapi.Build(s.Config.API, APIPrefix),
	}
}

// ServeOpenAPIUI serves the Swagger UI page.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTML(http.StatusOK, swaggerUI); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// ServeOpenAPIDocument serves the OpenAPI 3 document.
func (h *OpenAPIHandler) ServeOpenAPIDocument(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.JSON(http.StatusOK, h.document); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
