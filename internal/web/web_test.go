package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes_Index(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router)

	expected, err := os.ReadFile("static/index.html")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, expected, rec.Body.Bytes())
	require.Contains(t, rec.Body.String(), "/api/productos")
}

func TestRegisterRoutes_OnlyRoot(t *testing.T) {
	router := chi.NewRouter()
	RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
