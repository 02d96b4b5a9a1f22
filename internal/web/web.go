package web

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static/index.html
var static embed.FS

// IndexHandler sirve la página de entrada del front-end.
func IndexHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := static.ReadFile("static/index.html")
		if err != nil {
			http.Error(writer, "index not found", http.StatusInternalServerError)
			return
		}
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(body)
	}
}

// RegisterRoutes monta GET /. Se registra después de las rutas de la API.
func RegisterRoutes(route chi.Router) {
	route.Get("/", IndexHandler())
}
