package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /docs (Swagger UI) y /docs/openapi.yaml.
// Rutas planas: un Route("/docs") montaría un subrouter que tapa la redirección.
func RegisterRoutes(route chi.Router) {
	// /docs sin slash redirige a /docs/
	route.Get("/docs", func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, "/docs/", http.StatusMovedPermanently)
	})
	route.Get("/docs/", SwaggerUIHandler())
	route.Get("/docs/"+openAPIFile, OpenAPIHandler())
}
