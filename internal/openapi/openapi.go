// Package openapi builds the OpenAPI 3.0 document served at /swagger.json.
//
// The document is generated from the geometry catalog, so every route the
// router registers is documented and nothing else is.
package openapi

import (
	"net/http"

	"github.com/deppfellow/geometria-api/internal/config"
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version the document declares.
const Version = "3.0.3"

// Component schema names referenced from the operations.
const (
	SchemaResult     = "Resultado"
	SchemaError      = "Error"
	SchemaFieldError = "ErrorParametro"
	SchemaStatus     = "Estado"
	SchemaInfo       = "InformacionAPI"
)

const systemTag = "sistema"

var paramDescriptions = map[geometry.Param]string{
	geometry.Side:   "Longitud del lado",
	geometry.Base:   "Longitud de la base",
	geometry.Height: "Altura",
	geometry.Radius: "Radio",
}

var tagDescriptions = map[geometry.Operation]string{
	geometry.Area:      "Cálculo de áreas de figuras planas",
	geometry.Perimeter: "Cálculo de perímetros de figuras planas",
	geometry.Volume:    "Cálculo de volúmenes de cuerpos geométricos",
}

var paramExamples = map[geometry.Param]float64{
	geometry.Side:   5,
	geometry.Base:   4,
	geometry.Height: 6,
	geometry.Radius: 3,
}

// Build returns the document for the given API prefix and metadata.
func Build(api config.APIConfig, prefix string) *openapi3.T {
	schemas := openapi3.Schemas{
		SchemaResult:     openapi3.NewSchemaRef("", resultSchema()),
		SchemaError:      openapi3.NewSchemaRef("", errorSchema()),
		SchemaFieldError: openapi3.NewSchemaRef("", fieldErrorSchema()),
		SchemaStatus:     openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithAnyAdditionalProperties()),
		SchemaInfo:       openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithAnyAdditionalProperties()),
	}
	schemas[SchemaStatus].Value.Description = "Estado del servicio"
	schemas[SchemaInfo].Value.Description = "Metadatos y listado de endpoints"

	ref := func(name string) *openapi3.SchemaRef {
		return openapi3.NewSchemaRef("#/components/schemas/"+name, schemas[name].Value)
	}

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       api.Name,
			Version:     api.Version,
			Description: api.Description,
		},
		Servers:    openapi3.Servers{{URL: "/", Description: "Servidor actual"}},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: schemas},
	}

	if api.ContactName != "" || api.ContactEmail != "" {
		doc.Info.Contact = &openapi3.Contact{Name: api.ContactName, Email: api.ContactEmail}
	}

	for _, op := range geometry.Operations() {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: string(op), Description: tagDescriptions[op]})
	}
	doc.Tags = append(doc.Tags, &openapi3.Tag{Name: systemTag, Description: "Información y estado del servicio"})

	for _, calc := range geometry.Catalog() {
		doc.Paths.Set(prefix+calc.Path(), &openapi3.PathItem{Get: calculationOperation(calc, ref)})
	}

	info := newOperation()
	info.Tags = []string{systemTag}
	info.Summary = "Información de la API"
	info.OperationID = "getInfo"
	info.AddResponse(http.StatusOK, jsonResponse("Metadatos de la API", ref(SchemaInfo)))
	doc.Paths.Set("/", &openapi3.PathItem{Get: info})

	status := newOperation()
	status.Tags = []string{systemTag}
	status.Summary = "Estado del servicio"
	status.OperationID = "getStatus"
	status.AddResponse(http.StatusOK, jsonResponse("Servicio operativo", ref(SchemaStatus)))
	status.AddResponse(http.StatusServiceUnavailable, jsonResponse("Servicio degradado", ref(SchemaStatus)))
	doc.Paths.Set("/status", &openapi3.PathItem{Get: status})

	return doc
}

// newOperation starts with an empty response set; openapi3 would otherwise
// add a "default" response on the first AddResponse.
func newOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Responses = openapi3.NewResponsesWithCapacity(0)
	return op
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchemaRef(schema)
}

func calculationOperation(calc geometry.Calculation, ref func(string) *openapi3.SchemaRef) *openapi3.Operation {
	op := newOperation()
	op.Tags = []string{string(calc.Operation)}
	op.Summary = calc.Summary
	op.Description = "Fórmula: " + calc.Formula
	op.OperationID = string(calc.Operation) + "_" + string(calc.Shape)

	for _, p := range calc.Params {
		schema := openapi3.NewFloat64Schema().
			WithFormat("double").
			WithMin(0).
			WithExclusiveMin(true)
		schema.Example = paramExamples[p]

		op.AddParameter(openapi3.NewQueryParameter(string(p)).
			WithDescription(paramDescriptions[p]).
			WithRequired(true).
			WithSchema(schema))
	}

	op.AddResponse(http.StatusOK, jsonResponse("Cálculo realizado", ref(SchemaResult)))
	op.AddResponse(http.StatusBadRequest, jsonResponse("Parámetro inválido", ref(SchemaError)))
	op.AddResponse(http.StatusTooManyRequests, jsonResponse("Demasiadas solicitudes", ref(SchemaError)))
	op.AddResponse(http.StatusInternalServerError, jsonResponse("Error interno del servidor", ref(SchemaError)))

	return op
}

func numberSchema() *openapi3.Schema {
	return openapi3.NewFloat64Schema().WithFormat("double")
}

func stringSchema(example string) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Example = example
	return s
}

func resultSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperties(map[string]*openapi3.Schema{
			"figura":    stringSchema("Cuadrado"),
			"lado":      numberSchema(),
			"base":      numberSchema(),
			"altura":    numberSchema(),
			"radio":     numberSchema(),
			"area":      numberSchema(),
			"perimetro": numberSchema(),
			"volumen":   numberSchema(),
			"formula":   stringSchema("A = lado²"),
		}).
		WithRequired([]string{"figura", "formula"})
	s.Description = "Resultado del cálculo. Incluye las dimensiones recibidas y el valor bajo la clave de la operación."
	return s
}

func errorSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperties(map[string]*openapi3.Schema{
			"error":         stringSchema("El parámetro 'lado' debe ser un número válido"),
			"mensaje":       openapi3.NewStringSchema(),
			"documentacion": stringSchema("/swagger"),
			"codigo":        stringSchema("INVALID_PARAMETER"),
			"errores":       openapi3.NewArraySchema().WithItems(fieldErrorSchema()),
		}).
		WithRequired([]string{"error", "codigo"})
}

func fieldErrorSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperties(map[string]*openapi3.Schema{
			"campo": stringSchema("lado"),
			"error": stringSchema("debe ser un número positivo"),
		})
}
