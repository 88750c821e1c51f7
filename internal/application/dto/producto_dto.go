package dto

import "github.com/shopspring/decimal"

// ProductoRequest creación/actualización de producto.
type ProductoRequest struct {
	Nombre        string          `json:"nombre" validate:"required"`
	Descripcion   string          `json:"descripcion"`
	CostoPromedio decimal.Decimal `json:"costo_promedio"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	Stock         int64           `json:"stock" validate:"min=0"`
	CategoriaID   *int64          `json:"categoria_id"`
	ImagenURL     string          `json:"imagen_url"`
}

// ProductoResponse producto con el nombre de su categoría.
type ProductoResponse struct {
	ID              int64           `json:"id"`
	Nombre          string          `json:"nombre"`
	Descripcion     string          `json:"descripcion"`
	CostoPromedio   decimal.Decimal `json:"costo_promedio"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	Stock           int64           `json:"stock"`
	CategoriaID     *int64          `json:"categoria_id"`
	CategoriaNombre string          `json:"categoria_nombre,omitempty"`
	ImagenURL       string          `json:"imagen_url,omitempty"`
}
