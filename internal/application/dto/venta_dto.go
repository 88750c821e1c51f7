package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItemRequest una línea del carrito.
type VentaItemRequest struct {
	ProductoID     int64           `json:"producto_id" validate:"required,gt=0"`
	Cantidad       int64           `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateVentaRequest cuerpo de POST /api/ventas.
// PrecioUnitario se confía al caller (permite descuentos); el costo unitario
// jamás viene del cliente, se captura del producto dentro de la transacción.
type CreateVentaRequest struct {
	ClienteID  int64              `json:"cliente_id" validate:"required,gt=0"`
	CostoEnvio decimal.Decimal    `json:"costo_envio"`
	Productos  []VentaItemRequest `json:"productos" validate:"required,min=1,dive"`
}

// UpdateEstadoRequest cuerpo de PATCH /api/ventas/:id/estado.
type UpdateEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// VentaResumenResponse fila del listado de ventas.
type VentaResumenResponse struct {
	ID      int64           `json:"id"`
	Fecha   time.Time       `json:"fecha"`
	Total   decimal.Decimal `json:"total"`
	Estado  string          `json:"estado"`
	Cliente string          `json:"cliente"`
}

// VentaDetalleItem línea del detalle de una venta.
type VentaDetalleItem struct {
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	ProductoNombre string          `json:"producto_nombre"`
}

// VentaResponse venta completa con sus líneas.
type VentaResponse struct {
	ID         int64              `json:"id"`
	Fecha      time.Time          `json:"fecha"`
	Total      decimal.Decimal    `json:"total"`
	Estado     string             `json:"estado"`
	CostoEnvio decimal.Decimal    `json:"costo_envio"`
	Cliente    string             `json:"cliente"`
	Detalles   []VentaDetalleItem `json:"detalles"`
}
