package expenses

import (
	"context"
	"fmt"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// UseCase casos de uso de gastos. Crear registra el egreso en caja; borrar
// registra un ajuste compensatorio. Actualizar no toca la caja (solo corrige
// los datos del gasto, igual que el resto de los registros).
type UseCase struct {
	txRunner  TxRunner
	caja      CajaEngine
	gastoRepo repository.GastoRepository
}

// NewUseCase construye el caso de uso de gastos.
func NewUseCase(txRunner TxRunner, caja CajaEngine, gastoRepo repository.GastoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, caja: caja, gastoRepo: gastoRepo}
}

// Create inserta el gasto y registra el egreso (-|monto|) en una sola transacción.
func (uc *UseCase) Create(ctx context.Context, usuarioID int64, in dto.GastoRequest) (int64, error) {
	if in.Descripcion == "" || in.Monto.IsZero() || in.Fecha.IsZero() {
		return 0, domain.ErrInvalidInput
	}
	var gastoID int64
	err := uc.txRunner.RunGasto(ctx, func(
		gastoRepo repository.GastoRepository,
		cajaRepo repository.CajaRepository,
	) error {
		id, err := gastoRepo.Create(&entity.Gasto{
			UsuarioID:      usuarioID,
			Descripcion:    in.Descripcion,
			Monto:          in.Monto.Abs(),
			Fecha:          in.Fecha,
			CategoriaGasto: in.CategoriaGasto,
		})
		if err != nil {
			return err
		}
		gastoID = id
		return uc.caja.AppendInTx(cajaRepo, usuarioID, cash.MovimientoInput{
			Tipo:     entity.MovimientoEgreso,
			Concepto: fmt.Sprintf("Gasto: %s", in.Descripcion),
			Monto:    in.Monto.Abs().Neg(),
			GastoID:  &id,
		})
	})
	if err != nil {
		return 0, err
	}
	return gastoID, nil
}

// Delete borra el gasto y revierte su egreso con un ajuste de caja por el
// mismo monto, en una sola transacción. El libro queda consistente: la fila
// original no se toca, el reverso es un movimiento nuevo.
func (uc *UseCase) Delete(ctx context.Context, usuarioID, id int64) error {
	return uc.txRunner.RunGasto(ctx, func(
		gastoRepo repository.GastoRepository,
		cajaRepo repository.CajaRepository,
	) error {
		gasto, err := gastoRepo.GetByID(id, usuarioID)
		if err != nil {
			return err
		}
		if gasto == nil {
			return domain.ErrNotFound
		}
		ok, err := gastoRepo.Delete(id, usuarioID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return uc.caja.AppendInTx(cajaRepo, usuarioID, cash.MovimientoInput{
			Tipo:     entity.MovimientoAjuste,
			Concepto: fmt.Sprintf("Reverso gasto: %s", gasto.Descripcion),
			Monto:    gasto.Monto.Abs(),
		})
	})
}

// Update corrige los datos de un gasto existente; no genera movimiento de caja.
func (uc *UseCase) Update(usuarioID, id int64, in dto.GastoRequest) error {
	if in.Descripcion == "" || in.Monto.IsZero() || in.Fecha.IsZero() {
		return domain.ErrInvalidInput
	}
	ok, err := uc.gastoRepo.Update(&entity.Gasto{
		ID:             id,
		UsuarioID:      usuarioID,
		Descripcion:    in.Descripcion,
		Monto:          in.Monto.Abs(),
		Fecha:          in.Fecha,
		CategoriaGasto: in.CategoriaGasto,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID retorna un gasto del usuario, o ErrNotFound.
func (uc *UseCase) GetByID(usuarioID, id int64) (*dto.GastoResponse, error) {
	gasto, err := uc.gastoRepo.GetByID(id, usuarioID)
	if err != nil {
		return nil, err
	}
	if gasto == nil {
		return nil, domain.ErrNotFound
	}
	return toGastoResponse(gasto), nil
}

// List lista los gastos del usuario con filtro opcional por descripción.
func (uc *UseCase) List(usuarioID int64, search string) ([]dto.GastoResponse, error) {
	gastos, err := uc.gastoRepo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, *toGastoResponse(&gastos[i]))
	}
	return out, nil
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:             g.ID,
		Descripcion:    g.Descripcion,
		Monto:          g.Monto,
		Fecha:          g.Fecha,
		CategoriaGasto: g.CategoriaGasto,
	}
}
