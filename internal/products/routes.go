package products

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las rutas de productos en el router.
// Todas cuelgan de /api/productos.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/api/productos", func(route chi.Router) {
		route.Get("/", handler.List)
		route.Post("/", handler.Create)
		route.Get("/{id}", handler.GetByID)
		route.Put("/{id}", handler.Update)
		route.Delete("/{id}", handler.Delete)
	})
}
