package products

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB es el subconjunto de pgxpool.Pool que usa el repositorio.
// Permite testear con fakes sin levantar Postgres.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository accede a la tabla productos.
// Contiene SQL y mapeo DB → modelo.
type Repository struct {
	database DB
}

// NewRepository crea un repositorio de productos.
func NewRepository(database DB) *Repository {
	return &Repository{database: database}
}

const productColumns = `id, nombre, tipo_producto, costo_venta, cantidad_disponible, proveedor_id, material`

// List devuelve todos los productos ordenados por id ascendente.
// Nunca devuelve nil: una tabla vacía es un slice vacío.
func (repository *Repository) List(ctx context.Context) ([]Product, error) {
	const query = `SELECT ` + productColumns + ` FROM productos ORDER BY id ASC;`

	rows, err := repository.database.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID busca un producto por id.
func (repository *Repository) GetByID(ctx context.Context, id int64) (Product, error) {
	const query = `SELECT ` + productColumns + ` FROM productos WHERE id = $1;`

	product, err := scanProduct(repository.database.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrorNotFound
		}
		return Product{}, err
	}
	return product, nil
}

// Insert crea un producto y devuelve el registro persistido.
// Usamos RETURNING para obtener el id generado por DB.
func (repository *Repository) Insert(ctx context.Context, input ProductInput) (Product, error) {
	const query = `
		INSERT INTO productos (nombre, tipo_producto, costo_venta, cantidad_disponible, proveedor_id, material)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns + `;
	`

	product, err := scanProduct(repository.database.QueryRow(ctx, query, writeArgs(input)...))
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

// Update reemplaza los campos mutables del producto.
// Sin fila afectada, RETURNING no devuelve nada y pgx responde ErrNoRows.
func (repository *Repository) Update(ctx context.Context, id int64, input ProductInput) (Product, error) {
	const query = `
		UPDATE productos
		SET nombre = $1,
		    tipo_producto = $2,
		    costo_venta = $3,
		    cantidad_disponible = $4,
		    proveedor_id = $5,
		    material = $6
		WHERE id = $7
		RETURNING ` + productColumns + `;
	`

	args := append(writeArgs(input), id)
	product, err := scanProduct(repository.database.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrorNotFound
		}
		return Product{}, err
	}
	return product, nil
}

// Delete elimina un producto por id.
// El not found se detecta por filas afectadas.
func (repository *Repository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM productos WHERE id = $1;`

	tag, err := repository.database.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func writeArgs(input ProductInput) []any {
	var salePrice any
	if input.SalePrice != nil {
		salePrice = input.SalePrice.Decimal
	}
	return []any{
		input.Name,
		input.ProductType,
		salePrice,
		input.AvailableQuantity,
		input.SupplierID,
		input.Material,
	}
}

func scanProduct(row pgx.Row) (Product, error) {
	var product Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.ProductType,
		&product.SalePrice,
		&product.AvailableQuantity,
		&product.SupplierID,
		&product.Material,
	)
	return product, err
}
