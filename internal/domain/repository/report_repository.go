package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// RangoFechas filtro opcional para los reportes; cero = sin límite.
type RangoFechas struct {
	Desde time.Time
	Hasta time.Time
}

// VentaPorDia punto de la serie de ventas por día.
type VentaPorDia struct {
	Fecha time.Time
	Total decimal.Decimal
}

// ResumenFinanciero agregados de ingresos/costos para un rango.
type ResumenFinanciero struct {
	IngresosBrutos   decimal.Decimal
	CostoDeProductos decimal.Decimal
	TotalEnvio       decimal.Decimal
	TotalGastos      decimal.Decimal
}

// DesgloseMensual agregados por mes (formato YYYY-MM).
type DesgloseMensual struct {
	Mes      string
	Ingresos decimal.Decimal
	Costos   decimal.Decimal
	Gastos   decimal.Decimal
}

// ReportRepository proyecciones de solo lectura para dashboard y finanzas.
// Son sumas agrupadas; no contienen lógica de negocio.
type ReportRepository interface {
	TotalVentas(usuarioID int64, r RangoFechas) (decimal.Decimal, error)
	TotalGastos(usuarioID int64, r RangoFechas) (decimal.Decimal, error)
	TotalClientes(usuarioID int64) (int64, error)
	ProductosBajoStock(usuarioID int64, umbral int64) (int64, error)
	VentasPorDia(usuarioID int64, r RangoFechas) ([]VentaPorDia, error)
	Financiero(usuarioID int64, r RangoFechas) (*ResumenFinanciero, error)
	DesglosePorMes(usuarioID int64, r RangoFechas) ([]DesgloseMensual, error)
}
