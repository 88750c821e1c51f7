package repository

import (
	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

// CajaRepository define el puerto de persistencia para el libro de caja (DIP).
// El libro es append-only: no hay Update ni Delete.
type CajaRepository interface {
	// LockUsuario serializa los appends del usuario dentro de la transacción
	// actual (advisory lock transaccional). Debe llamarse antes de UltimoSaldo
	// para que lectura-del-último-saldo e inserción sean efectivamente seriales
	// por usuario.
	LockUsuario(usuarioID int64) error
	// UltimoSaldo retorna el saldo_resultante más reciente del usuario, o 0 si
	// no hay movimientos.
	UltimoSaldo(usuarioID int64) (decimal.Decimal, error)
	Create(m *entity.MovimientoCaja) error
	List(usuarioID int64) ([]entity.MovimientoCaja, error)
}
