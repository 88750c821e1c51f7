package expenses

import (
	"context"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repositorios de
// gasto y caja atados a esa tx (creación y borrado compensado de gastos).
type TxRunner interface {
	RunGasto(ctx context.Context, fn func(
		gastoRepo repository.GastoRepository,
		cajaRepo repository.CajaRepository,
	) error) error
}

// CajaEngine registra el movimiento de caja dentro de la transacción del caller.
type CajaEngine interface {
	AppendInTx(cajaRepo repository.CajaRepository, usuarioID int64, in cash.MovimientoInput) error
}
