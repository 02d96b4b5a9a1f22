package products

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
// Las violaciones de constraints (FK proveedor_id, etc.) no tienen error propio:
// salen como error genérico de datastore.
var (
	ErrorInvalidInput = errors.New("invalid input")
	ErrorNotFound     = errors.New("producto not found")
)

// ErrorDetail arma el texto de diagnóstico que puede viajar en "details".
// Para errores de Postgres usa mensaje + detalle, sin el SQLSTATE.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}

	var postgresError *pgconn.PgError
	if errors.As(err, &postgresError) {
		if postgresError.Detail != "" {
			return postgresError.Message + ": " + postgresError.Detail
		}
		return postgresError.Message
	}

	return err.Error()
}
