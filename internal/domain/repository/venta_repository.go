package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

// VentaResumen fila de listado: cabecera más el nombre del cliente
// ("Cliente Eliminado" cuando el cliente fue borrado).
type VentaResumen struct {
	ID      int64
	Fecha   time.Time
	Total   decimal.Decimal
	Estado  string
	Cliente string
}

// DetalleConProducto línea de venta con el nombre del producto para el detalle.
type DetalleConProducto struct {
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	ProductoNombre string
}

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(v *entity.Venta) (int64, error)
	CreateDetalle(d *entity.DetalleVenta) error
	List(usuarioID int64, search string) ([]VentaResumen, error)
	GetByID(id, usuarioID int64) (*entity.Venta, error)
	// ClienteNombre retorna el nombre del cliente de la venta, o
	// "Cliente Eliminado" si ya no existe.
	ClienteNombre(ventaID int64) (string, error)
	GetDetalles(ventaID int64) ([]DetalleConProducto, error)
	UpdateEstado(id, usuarioID int64, estado string) (bool, error)
}
