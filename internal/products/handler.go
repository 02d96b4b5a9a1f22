package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Lelo88/productos-api-golang/internal/httpx"
	"github.com/Lelo88/productos-api-golang/internal/logx"
)

const maxBodyBytes = 1 << 20

// Mensajes de error expuestos al cliente.
const (
	messageInvalidJSON   = "JSON inválido"
	messageInvalidID     = "El id debe ser un número entero positivo"
	messageMissingFields = "Los campos nombre y costo_venta son obligatorios"
	messageNotFound      = "Producto no encontrado"
	messageListFailed    = "Error al obtener los productos"
	messageGetFailed     = "Error al obtener el producto"
	messageCreateFailed  = "Error al crear el producto"
	messageUpdateFailed  = "Error al actualizar el producto"
	messageDeleteFailed  = "Error al eliminar el producto"
	messageTimeout       = "Tiempo de espera agotado"
)

// ServiceAPI define lo que el handler necesita.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, input ProductInput) (Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (Product, error)
	Delete(ctx context.Context, id int64) error
}

// Handler HTTP para productos.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service            ServiceAPI
	exposeErrorDetails bool
}

// Option configura el handler.
type Option func(*Handler)

// WithErrorDetails incluye el error interno en "details" de las respuestas 500.
func WithErrorDetails(expose bool) Option {
	return func(handler *Handler) {
		handler.exposeErrorDetails = expose
	}
}

// NewHandler crea un handler de productos.
func NewHandler(service ServiceAPI, options ...Option) *Handler {
	handler := &Handler{service: service}
	for _, option := range options {
		option(handler)
	}
	return handler
}

// List maneja GET /api/productos.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.List(request.Context())
	if err != nil {
		handler.internalError(writer, request, "list", 0, messageListFailed, err)
		return
	}
	if products == nil {
		products = []Product{}
	}

	httpx.OK(writer, request, http.StatusOK, products)
}

// GetByID maneja GET /api/productos/{id}.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	product, err := handler.service.Get(request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, messageNotFound)
		default:
			handler.internalError(writer, request, "get", id, messageGetFailed, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, product)
}

// Create maneja POST /api/productos.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	input, ok := decodeInput(writer, request)
	if !ok {
		return
	}

	product, err := handler.service.Create(request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, messageMissingFields)
		default:
			handler.internalError(writer, request, "create", 0, messageCreateFailed, err)
		}
		return
	}

	logx.Info().
		Str("request_id", httpx.RequestIDFrom(request)).
		Int64("producto_id", product.ID).
		Msg("producto creado")
	httpx.OK(writer, request, http.StatusCreated, product)
}

// Update maneja PUT /api/productos/{id}.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	input, ok := decodeInput(writer, request)
	if !ok {
		return
	}

	product, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, messageMissingFields)
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, messageNotFound)
		default:
			handler.internalError(writer, request, "update", id, messageUpdateFailed, err)
		}
		return
	}

	httpx.OK(writer, request, http.StatusOK, product)
}

// Delete maneja DELETE /api/productos/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(writer, request)
	if !ok {
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrorNotFound):
			httpx.Fail(writer, request, http.StatusNotFound, messageNotFound)
		default:
			handler.internalError(writer, request, "delete", id, messageDeleteFailed, err)
		}
		return
	}

	logx.Info().
		Str("request_id", httpx.RequestIDFrom(request)).
		Int64("producto_id", id).
		Msg("producto eliminado")
	// 204 No Content: respuesta vacía.
	httpx.NoContent(writer, request)
}

// internalError loguea el error crudo y responde 500 genérico,
// o 504 si se venció el deadline del request.
func (handler *Handler) internalError(writer http.ResponseWriter, request *http.Request, operation string, id int64, message string, err error) {
	event := logx.Error().
		Err(err).
		Str("request_id", httpx.RequestIDFrom(request)).
		Str("operation", operation)
	withProductID(event, id).Msg(message)

	status := http.StatusInternalServerError
	if isTimeout(request.Context(), err) {
		status, message = http.StatusGatewayTimeout, messageTimeout
	}

	if handler.exposeErrorDetails {
		httpx.FailWithDetails(writer, request, status, message, ErrorDetail(err))
		return
	}
	httpx.Fail(writer, request, status, message)
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

func withProductID(event *zerolog.Event, id int64) *zerolog.Event {
	if id > 0 {
		return event.Int64("producto_id", id)
	}
	return event
}

// parseID lee {id} del path. Los ids son bigserial, así que solo se aceptan enteros positivos.
func parseID(writer http.ResponseWriter, request *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil || id < 1 {
		httpx.Fail(writer, request, http.StatusBadRequest, messageInvalidID)
		return 0, false
	}
	return id, true
}

func decodeInput(writer http.ResponseWriter, request *http.Request) (ProductInput, bool) {
	var input ProductInput
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	decoder := json.NewDecoder(request.Body)
	// Un único objeto JSON: nada después salvo espacios.
	if err := decoder.Decode(&input); err != nil || decoder.More() {
		httpx.Fail(writer, request, http.StatusBadRequest, messageInvalidJSON)
		return ProductInput{}, false
	}
	return input, true
}
