package reports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/reports"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

type fakeFinancieroRepo struct {
	fakeReportRepo
}

func (f *fakeFinancieroRepo) Financiero(int64, repository.RangoFechas) (*repository.ResumenFinanciero, error) {
	return &repository.ResumenFinanciero{
		IngresosBrutos:   dec("2000.00"),
		CostoDeProductos: dec("1200.00"),
		TotalEnvio:       dec("150.00"),
		TotalGastos:      dec("300.00"),
	}, nil
}

func (f *fakeFinancieroRepo) DesglosePorMes(int64, repository.RangoFechas) ([]repository.DesgloseMensual, error) {
	return []repository.DesgloseMensual{
		{Mes: "2026-07", Ingresos: dec("900.00"), Costos: dec("500.00"), Gastos: dec("100.00")},
		{Mes: "2026-08", Ingresos: dec("1100.00"), Costos: dec("700.00"), Gastos: dec("200.00")},
	}, nil
}

func TestFinancialSummary_GananciasBrutaYNeta(t *testing.T) {
	uc := reports.NewFinancialUseCase(&fakeFinancieroRepo{})

	s, err := uc.Summary(1, repository.RangoFechas{})
	require.NoError(t, err)

	assert.True(t, s.GananciaBruta.Equal(dec("800.00")), "bruta = ingresos - costo de productos")
	assert.True(t, s.GananciaNeta.Equal(dec("500.00")), "neta = bruta - gastos")
	assert.True(t, s.TotalEnvio.Equal(dec("150.00")),
		"el envío se reporta aparte, no entra en la ganancia bruta")
}

func TestFinancialBreakdown_MapeaMeses(t *testing.T) {
	uc := reports.NewFinancialUseCase(&fakeFinancieroRepo{})

	rows, err := uc.Breakdown(1, repository.RangoFechas{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-07", rows[0].Month)
	assert.True(t, rows[1].Ingresos.Equal(dec("1100.00")))
}
