package cash

import (
	"context"

	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de caja atado a esa tx. Garantiza atomicidad para los ajustes
// manuales.
type TxRunner interface {
	RunCaja(ctx context.Context, fn func(cajaRepo repository.CajaRepository) error) error
}
