package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "2xx"},
		{http.StatusNoContent, "2xx"},
		{http.StatusMovedPermanently, "3xx"},
		{http.StatusNotFound, "4xx"},
		{http.StatusInternalServerError, "5xx"},
		{0, "unknown"},
		{999, "unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, classifyStatus(tt.status), "status=%d", tt.status)
	}
}

func TestRecordRequest(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/record-test", "2xx")
	before := testutil.ToFloat64(counter)

	RecordRequest(http.MethodGet, "/record-test", http.StatusOK, 10*time.Millisecond)

	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/api/productos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/productos/{id}", "4xx")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/productos/"+id, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordRequest(http.MethodPost, "/exposed", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "http_requests_total")
	require.Contains(t, string(body), `endpoint="/exposed"`)
}
