package reports

import (
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// FinancialUseCase reportes de rentabilidad: resumen del rango y desglose
// mensual. La ganancia bruta usa el costo congelado en cada línea de venta,
// no el costo promedio actual del producto.
type FinancialUseCase struct {
	repo repository.ReportRepository
}

// NewFinancialUseCase construye el caso de uso.
func NewFinancialUseCase(repo repository.ReportRepository) *FinancialUseCase {
	return &FinancialUseCase{repo: repo}
}

// Summary resumen financiero del rango: ingresos, costos, envío, gastos y
// ganancias bruta y neta.
func (uc *FinancialUseCase) Summary(usuarioID int64, r repository.RangoFechas) (*dto.FinancialSummary, error) {
	f, err := uc.repo.Financiero(usuarioID, r)
	if err != nil {
		return nil, err
	}
	gananciaBruta := f.IngresosBrutos.Sub(f.CostoDeProductos)
	return &dto.FinancialSummary{
		IngresosBrutos:   f.IngresosBrutos,
		CostoDeProductos: f.CostoDeProductos,
		GananciaBruta:    gananciaBruta,
		TotalEnvio:       f.TotalEnvio,
		TotalGastos:      f.TotalGastos,
		GananciaNeta:     gananciaBruta.Sub(f.TotalGastos),
	}, nil
}

// Breakdown desglose mensual de ingresos, costos y gastos.
func (uc *FinancialUseCase) Breakdown(usuarioID int64, r repository.RangoFechas) ([]dto.FinancialBreakdownRow, error) {
	meses, err := uc.repo.DesglosePorMes(usuarioID, r)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinancialBreakdownRow, 0, len(meses))
	for _, m := range meses {
		out = append(out, dto.FinancialBreakdownRow{
			Month:    m.Mes,
			Ingresos: m.Ingresos,
			Costos:   m.Costos,
			Gastos:   m.Gastos,
		})
	}
	return out, nil
}
