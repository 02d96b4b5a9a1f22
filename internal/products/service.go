package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RepositoryAPI define lo que el service necesita de la persistencia.
// Repository la implementa contra Postgres; los tests usan fakes en memoria.
type RepositoryAPI interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Insert(ctx context.Context, input ProductInput) (Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (Product, error)
	Delete(ctx context.Context, id int64) error
}

// Service contiene las reglas de negocio de productos.
type Service struct {
	repository RepositoryAPI
	validate   *validator.Validate
}

// NewService crea un service de productos.
func NewService(repository RepositoryAPI) *Service {
	return &Service{
		repository: repository,
		validate:   validator.New(),
	}
}

// List devuelve todos los productos.
func (service *Service) List(ctx context.Context) ([]Product, error) {
	return service.repository.List(ctx)
}

// Get obtiene un producto por id.
func (service *Service) Get(ctx context.Context, id int64) (Product, error) {
	return service.repository.GetByID(ctx, id)
}

// Create valida los campos obligatorios y crea el producto.
// Con input inválido no se llega a la DB.
func (service *Service) Create(ctx context.Context, input ProductInput) (Product, error) {
	input, err := service.validateInput(input)
	if err != nil {
		return Product{}, err
	}

	return service.repository.Insert(ctx, input)
}

// Update valida igual que Create y reemplaza el producto.
// Un id inexistente gana sobre el input inválido: se responde not found.
func (service *Service) Update(ctx context.Context, id int64, input ProductInput) (Product, error) {
	input, err := service.validateInput(input)
	if err != nil {
		if _, getErr := service.repository.GetByID(ctx, id); getErr != nil {
			return Product{}, getErr
		}
		return Product{}, err
	}

	return service.repository.Update(ctx, id, input)
}

// Delete elimina un producto por id.
func (service *Service) Delete(ctx context.Context, id int64) error {
	return service.repository.Delete(ctx, id)
}

func (service *Service) validateInput(input ProductInput) (ProductInput, error) {
	// Normalización mínima.
	input.Name = strings.TrimSpace(input.Name)

	if err := service.validate.Struct(input); err != nil {
		return ProductInput{}, fmt.Errorf("%w: %v", ErrorInvalidInput, err)
	}
	return input, nil
}
