package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
	MovimientoAjuste  = "ajuste"
)

// MovimientoCaja es una fila append-only del libro de caja del usuario.
// Monto es el delta firmado; SaldoResultante es el saldo acumulado tras
// aplicar este movimiento (prefix sum cacheado: saldo anterior + monto).
// Nunca se actualiza ni se borra.
type MovimientoCaja struct {
	ID              int64
	UsuarioID       int64
	Tipo            string
	Concepto        string
	Monto           decimal.Decimal
	SaldoResultante decimal.Decimal
	VentaID         *int64
	GastoID         *int64
	Fecha           time.Time
}
