package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// OpenAPIHandler serves the OpenAPI 3 description of the token parser endpoints.
type OpenAPIHandler struct {
	document map[string]any
	yamlDoc  []byte
}

// NewOpenAPIHandler builds the document once and renders its YAML form.
func NewOpenAPIHandler(version string) (*OpenAPIHandler, error) {
	document := buildOpenAPIDocument(version)

	yamlDoc, err := yaml.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("failed to render openapi yaml: %w", err)
	}

	return &OpenAPIHandler{document: document, yamlDoc: yamlDoc}, nil
}

// JSONHandler serves the document as JSON.
// GET /swagger/v1/swagger.json
func (h *OpenAPIHandler) JSONHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.document)
}

// YAMLHandler serves the document as YAML.
// GET /swagger/v1/swagger.yaml
func (h *OpenAPIHandler) YAMLHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", h.yamlDoc)
}

func tokenOperation(summary, example, okSchema string) map[string]any {
	return map[string]any{
		"summary": summary,
		"parameters": []any{
			map[string]any{
				"name":     "token",
				"in":       "query",
				"required": true,
				"schema":   map[string]any{"type": "string"},
				"example":  example,
			},
		},
		"responses": map[string]any{
			"200": jsonResponse("Token evaluated", okSchema),
			"400": jsonResponse("Invalid token", "ErrorResponse"),
		},
	}
}

func jsonResponse(description, schema string) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/" + schema},
			},
		},
	}
}

func stringProps(names ...string) map[string]any {
	props := make(map[string]any, len(names))
	for _, name := range names {
		props[name] = map[string]any{"type": "string"}
	}
	return props
}

func buildOpenAPIDocument(version string) map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Token Parser API",
			"description": "Evaluates date tokens and dynamic string tokens.",
			"version":     version,
		},
		"paths": map[string]any{
			"/alive": map[string]any{
				"get": map[string]any{
					"summary": "Liveness probe",
					"responses": map[string]any{
						"200": jsonResponse("Service is alive", "AliveResponse"),
					},
				},
			},
			"/parse-date-token": map[string]any{
				"get": tokenOperation("Evaluate a date token", "[TODAY+1MONTH-2DAY]", "ParsedTokenResponse"),
			},
			"/parse-date-range-token": map[string]any{
				"get": tokenOperation(
					"Evaluate a date range token",
					"[START-MARCH-2025<->END-MARCH-2025]",
					"DateRangeResponse",
				),
			},
			"/parse-dynamic-string-token": map[string]any{
				"get": tokenOperation(
					"Generate a dynamic string",
					"[ALPHA-NUMERIC-10-LINES-2]",
					"ParsedTokenResponse",
				),
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"AliveResponse": map[string]any{
					"type":       "object",
					"properties": stringProps("Status"),
				},
				"ParsedTokenResponse": map[string]any{
					"type":       "object",
					"required":   []any{"ParsedToken"},
					"properties": stringProps("ParsedToken", "Start", "End"),
				},
				"DateRangeResponse": map[string]any{
					"type":       "object",
					"required":   []any{"Start", "End"},
					"properties": stringProps("Start", "End"),
				},
				"ErrorResponse": map[string]any{
					"type":       "object",
					"properties": stringProps("Error"),
				},
			},
		},
	}
}
