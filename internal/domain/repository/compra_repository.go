package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

// CompraResumen fila de listado de compras con el nombre del proveedor.
type CompraResumen struct {
	ID          int64
	Fecha       time.Time
	TotalCompra decimal.Decimal
	Proveedor   string
}

// CompraRepository define el puerto de persistencia para Compra (DIP).
type CompraRepository interface {
	Create(c *entity.Compra) (int64, error)
	CreateDetalle(d *entity.DetalleCompra) error
	List(usuarioID int64) ([]CompraResumen, error)
}
