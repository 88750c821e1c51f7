package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAjusteRequest ajuste manual de caja; el monto puede ser negativo.
type CreateAjusteRequest struct {
	Concepto string          `json:"concepto" validate:"required"`
	Monto    decimal.Decimal `json:"monto" validate:"required"`
}

// SaldoResponse saldo actual de la caja del usuario.
type SaldoResponse struct {
	SaldoActual decimal.Decimal `json:"saldo_actual"`
}

// MovimientoResponse una fila del libro de caja.
type MovimientoResponse struct {
	ID              int64           `json:"id"`
	Tipo            string          `json:"tipo"`
	Concepto        string          `json:"concepto"`
	Monto           decimal.Decimal `json:"monto"`
	SaldoResultante decimal.Decimal `json:"saldo_resultante"`
	VentaID         *int64          `json:"venta_id,omitempty"`
	GastoID         *int64          `json:"gasto_id,omitempty"`
	Fecha           time.Time       `json:"fecha"`
}
