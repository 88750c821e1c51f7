package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/reports"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// DashboardHandler maneja las peticiones HTTP del dashboard (protegido).
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func rangoDeQuery(c *fiber.Ctx) repository.RangoFechas {
	return repository.RangoFechas{
		Desde: queryFecha(c, "desde"),
		Hasta: queryFecha(c, "hasta"),
	}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetUsuarioID(c), rangoDeQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VentasPorDia godoc
// @Summary      Serie diaria de ventas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {array}  dto.VentaPorDia
// @Router       /api/dashboard/ventas-por-dia [get]
func (h *DashboardHandler) VentasPorDia(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorDia(GetUsuarioID(c), rangoDeQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinancialsHandler maneja los reportes financieros (protegido).
type FinancialsHandler struct {
	uc *reports.FinancialUseCase
}

// NewFinancialsHandler construye el handler.
func NewFinancialsHandler(uc *reports.FinancialUseCase) *FinancialsHandler {
	return &FinancialsHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero
// @Description  Ganancia bruta calculada con el costo congelado en cada línea de venta.
// @Tags         financials
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.FinancialSummary
// @Router       /api/financials/summary [get]
func (h *FinancialsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetUsuarioID(c), rangoDeQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Breakdown godoc
// @Summary      Desglose financiero mensual
// @Tags         financials
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {array}  dto.FinancialBreakdownRow
// @Router       /api/financials/breakdown [get]
func (h *FinancialsHandler) Breakdown(c *fiber.Ctx) error {
	out, err := h.uc.Breakdown(GetUsuarioID(c), rangoDeQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
