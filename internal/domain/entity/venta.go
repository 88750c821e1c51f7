package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	EstadoPendiente  = "Pendiente"
	EstadoPagado     = "Pagado"
	EstadoEnviado    = "Enviado"
	EstadoCompletado = "Completado"
	EstadoCancelado  = "Cancelado"
)

// EstadoValido indica si la etiqueta es uno de los cinco estados reconocidos.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoPagado, EstadoEnviado, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// TransicionPermitida define la tabla de transiciones de estado.
// Cancelado es terminal; cualquier otro estado puede moverse a cualquiera.
func TransicionPermitida(desde, hacia string) bool {
	if desde == EstadoCancelado {
		return false
	}
	return EstadoValido(hacia)
}

// Venta cabecera de una venta. Inmutable tras su creación salvo Estado.
// Total = subtotal de líneas + costo de envío.
type Venta struct {
	ID         int64
	UsuarioID  int64
	ClienteID  *int64
	Total      decimal.Decimal
	CostoEnvio decimal.Decimal
	Estado     string
	Fecha      time.Time
}

// DetalleVenta línea de una venta. CostoUnitarioEnVenta es el costo promedio
// del producto capturado al momento de vender (snapshot histórico, nunca lo
// envía el cliente); PrecioUnitario sí viene del caller para permitir
// descuentos intencionales.
type DetalleVenta struct {
	ID                   int64
	VentaID              int64
	ProductoID           int64
	Cantidad             int64
	PrecioUnitario       decimal.Decimal
	CostoUnitarioEnVenta decimal.Decimal
}
