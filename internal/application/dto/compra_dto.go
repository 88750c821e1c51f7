package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompraItemRequest una línea de compra a proveedor.
type CompraItemRequest struct {
	ProductoID    int64           `json:"producto_id" validate:"required,gt=0"`
	Cantidad      int64           `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// CreateCompraRequest cuerpo de POST /api/compras.
type CreateCompraRequest struct {
	ProveedorID int64               `json:"proveedor_id" validate:"required,gt=0"`
	Productos   []CompraItemRequest `json:"productos" validate:"required,min=1,dive"`
}

// CompraResumenResponse fila del listado de compras.
type CompraResumenResponse struct {
	ID          int64           `json:"id"`
	Fecha       time.Time       `json:"fecha"`
	TotalCompra decimal.Decimal `json:"total_compra"`
	Proveedor   string          `json:"proveedor"`
}
