package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GastoRequest creación/actualización de un gasto. Monto siempre positivo;
// el signo del movimiento de caja lo pone el caso de uso.
type GastoRequest struct {
	Descripcion    string          `json:"descripcion" validate:"required"`
	Monto          decimal.Decimal `json:"monto" validate:"required"`
	Fecha          time.Time       `json:"fecha" validate:"required"`
	CategoriaGasto string          `json:"categoria_gasto"`
}

// GastoResponse un gasto del usuario.
type GastoResponse struct {
	ID             int64           `json:"id"`
	Descripcion    string          `json:"descripcion"`
	Monto          decimal.Decimal `json:"monto"`
	Fecha          time.Time       `json:"fecha"`
	CategoriaGasto string          `json:"categoria_gasto,omitempty"`
}
