package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra cabecera de una compra a proveedor. Aumenta stock y recalcula el
// costo promedio ponderado de cada producto.
type Compra struct {
	ID          int64
	UsuarioID   int64
	ProveedorID int64
	TotalCompra decimal.Decimal
	Fecha       time.Time
}

// DetalleCompra línea de una compra.
type DetalleCompra struct {
	ID            int64
	CompraID      int64
	ProductoID    int64
	Cantidad      int64
	CostoUnitario decimal.Decimal
}
