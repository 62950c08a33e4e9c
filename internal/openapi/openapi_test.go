package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deppfellow/geometria-api/internal/config"
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_IsValid(t *testing.T) {
	doc := Build(config.DefaultConfig().API, "/api/Geometria")
	require.NoError(t, doc.Validate(context.Background()))
}

func TestBuild(t *testing.T) {
	api := config.DefaultConfig().API
	doc := Build(api, "/api/Geometria")

	assert.Equal(t, Version, doc.OpenAPI)
	assert.Equal(t, api.Name, doc.Info.Title)
	assert.Equal(t, api.Version, doc.Info.Version)
	assert.Len(t, doc.Tags, 4)
	assert.Equal(t, len(geometry.Catalog())+2, doc.Paths.Len())

	for _, calc := range geometry.Catalog() {
		item := doc.Paths.Value("/api/Geometria" + calc.Path())
		require.NotNil(t, item, calc.String())
		require.NotNil(t, item.Get)

		op := item.Get
		assert.Equal(t, calc.Summary, op.Summary)
		assert.Contains(t, op.Description, calc.Formula)
		require.Len(t, op.Parameters, len(calc.Params))
		for i, p := range calc.Params {
			param := op.Parameters[i].Value
			assert.Equal(t, string(p), param.Name)
			assert.Equal(t, openapi3.ParameterInQuery, param.In)
			assert.True(t, param.Required)
			assert.True(t, param.Schema.Value.ExclusiveMin)
		}
		assert.NotNil(t, op.Responses.Value("200"))
		assert.NotNil(t, op.Responses.Value("400"))
	}

	assert.NotNil(t, doc.Paths.Value("/"))
	assert.NotNil(t, doc.Paths.Value("/status"))
}

func TestBuild_Contact(t *testing.T) {
	api := config.DefaultConfig().API

	api.ContactName, api.ContactEmail = "", ""
	assert.Nil(t, Build(api, "").Info.Contact)

	api.ContactEmail = "equipo@example.com"
	doc := Build(api, "")
	require.NotNil(t, doc.Info.Contact)
	assert.Equal(t, "equipo@example.com", doc.Info.Contact.Email)
}

func TestBuild_ResponsesReferenceComponents(t *testing.T) {
	doc := Build(config.DefaultConfig().API, "/api/Geometria")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))

	ok := generic["paths"].(map[string]any)["/api/Geometria/area/cuadrado"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"]
	schema := ok.(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "#/components/schemas/"+SchemaResult, schema["$ref"])

	schemas := generic["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, SchemaResult)
	assert.Contains(t, schemas, SchemaError)
}

func TestBuild_NoDefaultResponse(t *testing.T) {
	doc := Build(config.DefaultConfig().API, "/api/Geometria")

	for path, item := range doc.Paths.Map() {
		assert.Nil(t, item.Get.Responses.Value("default"), path)
	}
}
