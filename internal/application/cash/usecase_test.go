package cash_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeCajaRepo libro de caja en memoria. Registra el orden de las llamadas
// para verificar que el lock se toma antes de leer el último saldo.
type fakeCajaRepo struct {
	movimientos []entity.MovimientoCaja
	llamadas    []string
	nextID      int64
}

func (f *fakeCajaRepo) LockUsuario(usuarioID int64) error {
	f.llamadas = append(f.llamadas, "lock")
	return nil
}

func (f *fakeCajaRepo) UltimoSaldo(usuarioID int64) (decimal.Decimal, error) {
	f.llamadas = append(f.llamadas, "ultimoSaldo")
	for i := len(f.movimientos) - 1; i >= 0; i-- {
		if f.movimientos[i].UsuarioID == usuarioID {
			return f.movimientos[i].SaldoResultante, nil
		}
	}
	return decimal.Zero, nil
}

func (f *fakeCajaRepo) Create(m *entity.MovimientoCaja) error {
	f.llamadas = append(f.llamadas, "create")
	f.nextID++
	m.ID = f.nextID
	f.movimientos = append(f.movimientos, *m)
	return nil
}

func (f *fakeCajaRepo) List(usuarioID int64) ([]entity.MovimientoCaja, error) {
	out := make([]entity.MovimientoCaja, 0, len(f.movimientos))
	for i := len(f.movimientos) - 1; i >= 0; i-- {
		if f.movimientos[i].UsuarioID == usuarioID {
			out = append(out, f.movimientos[i])
		}
	}
	return out, nil
}

// fakeTxRunner pasa el repo directo; las pruebas de atomicidad real viven en
// la capa de infraestructura.
type fakeTxRunner struct {
	repo repository.CajaRepository
}

func (f *fakeTxRunner) RunCaja(_ context.Context, fn func(repository.CajaRepository) error) error {
	return fn(f.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// AppendInTx
// ──────────────────────────────────────────────────────────────────────────────

func TestAppendInTx_SaldoEsSumaPrefija(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(nil, repo)

	deltas := []string{"100.00", "-30.50", "250.00", "-19.50"}
	esperados := []string{"100.00", "69.50", "319.50", "300.00"}

	for i, d := range deltas {
		err := uc.AppendInTx(repo, 1, cash.MovimientoInput{
			Tipo:     entity.MovimientoAjuste,
			Concepto: "movimiento de prueba",
			Monto:    decimal.RequireFromString(d),
		})
		require.NoError(t, err)
		got := repo.movimientos[i].SaldoResultante
		assert.True(t, got.Equal(decimal.RequireFromString(esperados[i])),
			"saldo tras el movimiento %d debe ser %s, fue %s", i, esperados[i], got)
	}
}

func TestAppendInTx_LockAntesDeLeerSaldo(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(nil, repo)

	err := uc.AppendInTx(repo, 1, cash.MovimientoInput{
		Tipo:     entity.MovimientoIngreso,
		Concepto: "Venta #1",
		Monto:    decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lock", "ultimoSaldo", "create"}, repo.llamadas,
		"el lock por usuario debe tomarse antes de leer el último saldo")
}

func TestAppendInTx_SaldosIndependientesPorUsuario(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(nil, repo)

	require.NoError(t, uc.AppendInTx(repo, 1, cash.MovimientoInput{
		Tipo: entity.MovimientoIngreso, Concepto: "a", Monto: decimal.RequireFromString("100"),
	}))
	require.NoError(t, uc.AppendInTx(repo, 2, cash.MovimientoInput{
		Tipo: entity.MovimientoIngreso, Concepto: "b", Monto: decimal.RequireFromString("7"),
	}))

	assert.True(t, repo.movimientos[1].SaldoResultante.Equal(decimal.RequireFromString("7")),
		"el saldo del usuario 2 no debe arrastrar movimientos del usuario 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateAjuste / lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAjuste_MontoNegativoPermitido(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(&fakeTxRunner{repo: repo}, repo)

	err := uc.CreateAjuste(context.Background(), 1, dto.CreateAjusteRequest{
		Concepto: "Faltante de caja",
		Monto:    decimal.RequireFromString("-25.00"),
	})
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 1)
	mov := repo.movimientos[0]
	assert.Equal(t, entity.MovimientoAjuste, mov.Tipo)
	assert.True(t, mov.SaldoResultante.Equal(decimal.RequireFromString("-25.00")),
		"un ajuste negativo puede dejar el saldo bajo cero")
}

func TestCreateAjuste_SinConcepto_RetornaInvalidInput(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(&fakeTxRunner{repo: repo}, repo)

	err := uc.CreateAjuste(context.Background(), 1, dto.CreateAjusteRequest{
		Monto: decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.movimientos, "no debe insertarse ningún movimiento")
}

func TestSaldoActual_SinMovimientos_RetornaCero(t *testing.T) {
	uc := cash.NewUseCase(nil, &fakeCajaRepo{})

	resp, err := uc.SaldoActual(99)
	require.NoError(t, err)
	assert.True(t, resp.SaldoActual.IsZero(), "sin movimientos el saldo es 0")
}

func TestMovimientos_MasRecientePrimero(t *testing.T) {
	repo := &fakeCajaRepo{}
	uc := cash.NewUseCase(nil, repo)

	for _, c := range []string{"primero", "segundo", "tercero"} {
		require.NoError(t, uc.AppendInTx(repo, 1, cash.MovimientoInput{
			Tipo: entity.MovimientoIngreso, Concepto: c, Monto: decimal.RequireFromString("1"),
		}))
	}

	movs, err := uc.Movimientos(1)
	require.NoError(t, err)
	require.Len(t, movs, 3)
	assert.Equal(t, "tercero", movs[0].Concepto)
	assert.Equal(t, "primero", movs[2].Concepto)
}
