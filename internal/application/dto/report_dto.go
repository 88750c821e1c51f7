package dto

import "github.com/shopspring/decimal"

// DashboardSummary tarjetas del dashboard principal.
type DashboardSummary struct {
	TotalVentas        decimal.Decimal `json:"totalVentas"`
	TotalGastos        decimal.Decimal `json:"totalGastos"`
	GananciaNeta       decimal.Decimal `json:"gananciaNeta"`
	TotalClientes      int64           `json:"totalClientes"`
	ProductosBajoStock int64           `json:"productosBajoStock"`
}

// VentaPorDia punto de la serie temporal de ventas.
type VentaPorDia struct {
	Fecha string          `json:"fecha"`
	Total decimal.Decimal `json:"total"`
}

// FinancialSummary resumen financiero del rango consultado.
type FinancialSummary struct {
	IngresosBrutos   decimal.Decimal `json:"ingresosBrutos"`
	CostoDeProductos decimal.Decimal `json:"costoDeProductos"`
	GananciaBruta    decimal.Decimal `json:"gananciaBruta"`
	TotalEnvio       decimal.Decimal `json:"totalEnvio"`
	TotalGastos      decimal.Decimal `json:"totalGastos"`
	GananciaNeta     decimal.Decimal `json:"gananciaNeta"`
}

// FinancialBreakdownRow desglose mensual de ingresos, costos y gastos.
type FinancialBreakdownRow struct {
	Month    string          `json:"month"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Gastos   decimal.Decimal `json:"gastos"`
}
