package products

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router, NewHandler(NewService(&fakeRepo{getItem: Product{ID: 7}})))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "post productos",
			method:     http.MethodPost,
			path:       "/api/productos",
			body:       `{"nombre":"Anillo","costo_venta":150}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "get productos",
			method:     http.MethodGet,
			path:       "/api/productos",
			wantStatus: http.StatusOK,
		},
		{
			name:       "get productos trailing slash",
			method:     http.MethodGet,
			path:       "/api/productos/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "get producto by id",
			method:     http.MethodGet,
			path:       "/api/productos/7",
			wantStatus: http.StatusOK,
		},
		{
			name:       "put producto",
			method:     http.MethodPut,
			path:       "/api/productos/7",
			body:       `{"nombre":"Anillo","costo_venta":150}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "delete producto",
			method:     http.MethodDelete,
			path:       "/api/productos/7",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "patch is not routed",
			method:     http.MethodPatch,
			path:       "/api/productos/7",
			body:       `{"nombre":"Anillo"}`,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
