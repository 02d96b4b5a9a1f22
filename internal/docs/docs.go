package docs

import (
	"embed"
	"net/http"
)

const (
	openAPIFile = "openapi.yaml"
	swaggerFile = "swagger.html"
)

//go:embed openapi.yaml swagger.html
var assets embed.FS

// OpenAPIHandler sirve la definición OpenAPI de /api/productos.
func OpenAPIHandler() http.HandlerFunc {
	return serveAsset(openAPIFile, "application/yaml; charset=utf-8")
}

// SwaggerUIHandler sirve la página de Swagger UI que consume /docs/openapi.yaml.
func SwaggerUIHandler() http.HandlerFunc {
	return serveAsset(swaggerFile, "text/html; charset=utf-8")
}

func serveAsset(name, contentType string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := assets.ReadFile(name)
		if err != nil {
			http.Error(writer, name+" not found", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", contentType)
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(body)
	}
}
