package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/productos-api-golang/internal/httpx"
	"github.com/Lelo88/productos-api-golang/internal/logx"
)

// pingTimeout acota el ping de /ready.
var pingTimeout = 2 * time.Second

// Pinger es lo único que health necesita del pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	database Pinger
}

// New crea un handler de health. database puede ser nil (ready responde 503).
func New(database Pinger) *Handler {
	return &Handler{database: database}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos. Eso va en /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si la app puede atender tráfico (DB alcanzable).
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.database == nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "database pool not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := handler.database.Ping(ctx); err != nil {
		logx.Warn().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("readiness ping failed")
		httpx.Fail(w, r, http.StatusServiceUnavailable, "database is not reachable")
		return
	}

	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
