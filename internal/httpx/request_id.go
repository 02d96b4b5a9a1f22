package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader es el header que se lee del cliente y se devuelve en la respuesta.
const RequestIDHeader = "X-Request-Id"

var newRequestID = func() string {
	return uuid.NewString()
}

// RequestID reutiliza el id que manda el cliente o genera un UUID.
// Lo guarda bajo la misma key que chi, así middleware.GetReqID sigue funcionando.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > 128 {
			requestID = newRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom lee el request id desde el contexto (middleware) o, en su defecto, del header.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if requestID := middleware.GetReqID(request.Context()); requestID != "" {
		return requestID
	}
	return request.Header.Get(RequestIDHeader)
}
