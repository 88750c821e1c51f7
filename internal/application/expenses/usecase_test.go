package expenses_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/expenses"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

const usuarioID = int64(1)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeGastoRepo struct {
	gastos map[int64]*entity.Gasto
	nextID int64
}

func newFakeGastoRepo() *fakeGastoRepo {
	return &fakeGastoRepo{gastos: make(map[int64]*entity.Gasto)}
}

func (f *fakeGastoRepo) Create(g *entity.Gasto) (int64, error) {
	f.nextID++
	g.ID = f.nextID
	f.gastos[g.ID] = g
	return g.ID, nil
}

func (f *fakeGastoRepo) GetByID(id, usuarioID int64) (*entity.Gasto, error) {
	g, ok := f.gastos[id]
	if !ok || g.UsuarioID != usuarioID {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGastoRepo) List(usuarioID int64, search string) ([]entity.Gasto, error) {
	var out []entity.Gasto
	for _, g := range f.gastos {
		if g.UsuarioID == usuarioID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGastoRepo) Update(g *entity.Gasto) (bool, error) {
	existente, ok := f.gastos[g.ID]
	if !ok || existente.UsuarioID != g.UsuarioID {
		return false, nil
	}
	f.gastos[g.ID] = g
	return true, nil
}

func (f *fakeGastoRepo) Delete(id, usuarioID int64) (bool, error) {
	g, ok := f.gastos[id]
	if !ok || g.UsuarioID != usuarioID {
		return false, nil
	}
	delete(f.gastos, id)
	return true, nil
}

type fakeCajaRepo struct {
	movimientos []entity.MovimientoCaja
}

func (f *fakeCajaRepo) LockUsuario(usuarioID int64) error { return nil }

func (f *fakeCajaRepo) UltimoSaldo(usuarioID int64) (decimal.Decimal, error) {
	if len(f.movimientos) == 0 {
		return decimal.Zero, nil
	}
	return f.movimientos[len(f.movimientos)-1].SaldoResultante, nil
}

func (f *fakeCajaRepo) Create(m *entity.MovimientoCaja) error {
	m.ID = int64(len(f.movimientos) + 1)
	f.movimientos = append(f.movimientos, *m)
	return nil
}

func (f *fakeCajaRepo) List(usuarioID int64) ([]entity.MovimientoCaja, error) {
	return f.movimientos, nil
}

type fakeGastoTxRunner struct {
	gastoRepo *fakeGastoRepo
	cajaRepo  *fakeCajaRepo
}

func (f *fakeGastoTxRunner) RunGasto(_ context.Context, fn func(
	repository.GastoRepository,
	repository.CajaRepository,
) error) error {
	return fn(f.gastoRepo, f.cajaRepo)
}

func setup() (*expenses.UseCase, *fakeGastoTxRunner) {
	tx := &fakeGastoTxRunner{gastoRepo: newFakeGastoRepo(), cajaRepo: &fakeCajaRepo{}}
	uc := expenses.NewUseCase(tx, cash.NewUseCase(nil, nil), tx.gastoRepo)
	return uc, tx
}

func TestCreate_RegistraEgresoEnCaja(t *testing.T) {
	uc, tx := setup()

	id, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Alquiler del local",
		Monto:       dec("800.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	require.Len(t, tx.cajaRepo.movimientos, 1)
	mov := tx.cajaRepo.movimientos[0]
	assert.Equal(t, entity.MovimientoEgreso, mov.Tipo)
	assert.True(t, mov.Monto.Equal(dec("-800.00")), "el egreso va con signo negativo")
	require.NotNil(t, mov.GastoID)
	assert.Equal(t, id, *mov.GastoID)
}

func TestCreate_MontoNegativoSeNormaliza(t *testing.T) {
	uc, tx := setup()

	id, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Compra de bolsas",
		Monto:       dec("-15.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, tx.gastoRepo.gastos[id].Monto.Equal(dec("15.00")),
		"el gasto se guarda en positivo")
	assert.True(t, tx.cajaRepo.movimientos[0].Monto.Equal(dec("-15.00")),
		"la caja recibe el delta negativo")
}

func TestDelete_RegistraAjusteCompensatorio(t *testing.T) {
	uc, tx := setup()

	id, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Publicidad",
		Monto:       dec("120.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), usuarioID, id))

	// El egreso original no se toca; el reverso es un movimiento nuevo y el
	// saldo vuelve a cero.
	require.Len(t, tx.cajaRepo.movimientos, 2)
	assert.Equal(t, entity.MovimientoEgreso, tx.cajaRepo.movimientos[0].Tipo)
	reverso := tx.cajaRepo.movimientos[1]
	assert.Equal(t, entity.MovimientoAjuste, reverso.Tipo)
	assert.True(t, reverso.Monto.Equal(dec("120.00")))
	assert.True(t, reverso.SaldoResultante.IsZero(), "el reverso restaura el saldo")
	assert.NotContains(t, tx.gastoRepo.gastos, id)
}

func TestDelete_GastoDeOtroUsuario(t *testing.T) {
	uc, tx := setup()

	id, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Luz",
		Monto:       dec("90.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), 99, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, tx.cajaRepo.movimientos, 1, "sin reverso si el gasto no es del usuario")
}

func TestUpdate_NoTocaLaCaja(t *testing.T) {
	uc, tx := setup()

	id, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Internet",
		Monto:       dec("60.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)

	err = uc.Update(usuarioID, id, dto.GastoRequest{
		Descripcion: "Internet y teléfono",
		Monto:       dec("75.00"),
		Fecha:       time.Now(),
	})
	require.NoError(t, err)

	assert.Len(t, tx.cajaRepo.movimientos, 1,
		"actualizar un gasto corrige datos, no genera movimientos")
	assert.True(t, tx.gastoRepo.gastos[id].Monto.Equal(dec("75.00")))
}

func TestCreate_EntradaInvalida(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Monto: dec("10.00"),
		Fecha: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), usuarioID, dto.GastoRequest{
		Descripcion: "Sin monto",
		Fecha:       time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
