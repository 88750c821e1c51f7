package cash

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// MovimientoInput entrada para registrar un movimiento de caja.
// Monto es el delta firmado: positivo para ingresos y ajustes a favor,
// negativo para egresos y ajustes en contra. El signo es responsabilidad
// del caller, el motor no lo valida.
type MovimientoInput struct {
	Tipo     string
	Concepto string
	Monto    decimal.Decimal
	VentaID  *int64
	GastoID  *int64
}

// UseCase motor del libro de caja: appends serializados por usuario y
// lecturas de saldo/historial. Los appends siempre corren dentro de una
// transacción provista por el caller (AppendInTx) o abierta aquí (CreateAjuste).
type UseCase struct {
	txRunner TxRunner
	cajaRepo repository.CajaRepository
}

// NewUseCase construye el motor de caja. cajaRepo se usa para las lecturas
// fuera de transacción (saldo e historial).
func NewUseCase(txRunner TxRunner, cajaRepo repository.CajaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, cajaRepo: cajaRepo}
}

// AppendInTx registra un movimiento usando el repositorio del caller (misma
// transacción). Toma el lock por usuario, lee el último saldo_resultante e
// inserta la fila con saldo = anterior + monto. Si retorna error, el caller
// debe hacer rollback.
func (uc *UseCase) AppendInTx(cajaRepo repository.CajaRepository, usuarioID int64, in MovimientoInput) error {
	if err := cajaRepo.LockUsuario(usuarioID); err != nil {
		return err
	}
	ultimo, err := cajaRepo.UltimoSaldo(usuarioID)
	if err != nil {
		return err
	}
	mov := &entity.MovimientoCaja{
		UsuarioID:       usuarioID,
		Tipo:            in.Tipo,
		Concepto:        in.Concepto,
		Monto:           in.Monto,
		SaldoResultante: ultimo.Add(in.Monto),
		VentaID:         in.VentaID,
		GastoID:         in.GastoID,
		Fecha:           time.Now(),
	}
	return cajaRepo.Create(mov)
}

// CreateAjuste registra un ajuste manual en su propia transacción.
func (uc *UseCase) CreateAjuste(ctx context.Context, usuarioID int64, in dto.CreateAjusteRequest) error {
	if in.Concepto == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunCaja(ctx, func(cajaRepo repository.CajaRepository) error {
		return uc.AppendInTx(cajaRepo, usuarioID, MovimientoInput{
			Tipo:     entity.MovimientoAjuste,
			Concepto: in.Concepto,
			Monto:    in.Monto,
		})
	})
}

// SaldoActual retorna el saldo_resultante más reciente del usuario, o 0.
func (uc *UseCase) SaldoActual(usuarioID int64) (*dto.SaldoResponse, error) {
	saldo, err := uc.cajaRepo.UltimoSaldo(usuarioID)
	if err != nil {
		return nil, err
	}
	return &dto.SaldoResponse{SaldoActual: saldo}, nil
}

// Movimientos retorna el historial completo del usuario, más reciente primero.
func (uc *UseCase) Movimientos(usuarioID int64) ([]dto.MovimientoResponse, error) {
	movs, err := uc.cajaRepo.List(usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoResponse{
			ID:              m.ID,
			Tipo:            m.Tipo,
			Concepto:        m.Concepto,
			Monto:           m.Monto,
			SaldoResultante: m.SaldoResultante,
			VentaID:         m.VentaID,
			GastoID:         m.GastoID,
			Fecha:           m.Fecha,
		})
	}
	return out, nil
}
