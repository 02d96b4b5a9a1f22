package products

// Product representa una fila de la tabla productos.
// Los campos opcionales son punteros: NULL en DB se serializa como null.
type Product struct {
	ID                int64   `json:"id"`
	Name              string  `json:"nombre"`
	ProductType       *string `json:"tipo_producto"`
	SalePrice         Money   `json:"costo_venta"`
	AvailableQuantity int     `json:"cantidad_disponible"`
	SupplierID        *int64  `json:"proveedor_id"`
	Material          *string `json:"material"`
}

// ProductInput es el payload de alta y de modificación.
// Update reemplaza todos los campos mutables, por eso comparten struct.
// nombre y costo_venta son obligatorios; el resto puede omitirse.
type ProductInput struct {
	Name              string  `json:"nombre" validate:"required"`
	ProductType       *string `json:"tipo_producto"`
	SalePrice         *Money  `json:"costo_venta" validate:"required"`
	AvailableQuantity int     `json:"cantidad_disponible"`
	SupplierID        *int64  `json:"proveedor_id"`
	Material          *string `json:"material"`
}
