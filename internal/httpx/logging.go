package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Lelo88/productos-api-golang/internal/logx"
)

// RequestLogger registra una línea por request.
// 5xx sale como error, 4xx como warn, el resto como info.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			eventFor(status).
				Str("request_id", RequestIDFrom(r)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Int("status", status).
				Int("bytes", wrapped.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()

		next.ServeHTTP(wrapped, r)
	})
}

func eventFor(status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return logx.Error()
	case status >= http.StatusBadRequest:
		return logx.Warn()
	default:
		return logx.Info()
	}
}
