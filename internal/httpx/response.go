package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody es el cuerpo de toda respuesta de error: {"error": "...", "details": "..."}.
// Details solo se completa si la app está configurada para exponerlo.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON escribe una respuesta JSON con headers correctos.
// Nota: en caso de error de encodeo, responde 500 de forma segura.
func JSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		// Último recurso: no se pudo serializar JSON.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(payload, '\n'))
}

// OK devuelve data tal cual, sin sobre.
func OK(w http.ResponseWriter, r *http.Request, status int, data any) {
	setRequestIDHeader(w, r)
	JSON(w, status, data)
}

// Fail devuelve un error con mensaje para humanos.
func Fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	setRequestIDHeader(w, r)
	JSON(w, status, ErrorBody{Error: message})
}

// FailWithDetails agrega el detalle técnico del error.
func FailWithDetails(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	setRequestIDHeader(w, r)
	JSON(w, status, ErrorBody{Error: message, Details: details})
}

// NoContent responde 204 sin cuerpo.
func NoContent(w http.ResponseWriter, r *http.Request) {
	setRequestIDHeader(w, r)
	w.WriteHeader(http.StatusNoContent)
}

func setRequestIDHeader(w http.ResponseWriter, r *http.Request) {
	if requestID := RequestIDFrom(r); requestID != "" {
		w.Header().Set(RequestIDHeader, requestID)
	}
}
