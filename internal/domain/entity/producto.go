package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo del usuario.
// CostoPromedio sube con las compras (promedio ponderado) y se congela como
// snapshot en cada línea de venta; Stock solo cambia por compras y ventas.
type Producto struct {
	ID            int64
	UsuarioID     int64
	Nombre        string
	Descripcion   string
	CostoPromedio decimal.Decimal
	PrecioVenta   decimal.Decimal
	Stock         int64
	CategoriaID   *int64
	ImagenURL     string
	CreatedAt     time.Time
}
