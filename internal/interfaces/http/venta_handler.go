package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/reports"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
)

// VentaHandler maneja las peticiones HTTP para ventas (protegido).
type VentaHandler struct {
	createUC  *sales.CreateVentaUseCase
	ventasUC  *sales.VentasUseCase
	dashboard *reports.DashboardUseCase
}

// NewVentaHandler construye el handler. dashboard se usa solo para invalidar
// el resumen cacheado tras crear una venta.
func NewVentaHandler(createUC *sales.CreateVentaUseCase, ventasUC *sales.VentasUseCase, dashboard *reports.DashboardUseCase) *VentaHandler {
	return &VentaHandler{createUC: createUC, ventasUC: ventasUC, dashboard: dashboard}
}

// Create godoc
// @Summary      Crear venta
// @Description  Valida stock, congela costos, descuenta inventario y registra el ingreso en caja en una sola transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Carrito de la venta"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	var in dto.CreateVentaRequest
	if !parseBody(c, &in) {
		return nil
	}
	id, err := h.createUC.CreateVenta(c.UserContext(), usuarioID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.dashboard.Invalidate(context.Background(), usuarioID)
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "Venta creada exitosamente."})
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre de cliente"
// @Success      200  {array}  dto.VentaResumenResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.ventasUC.List(GetUsuarioID(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta con detalle
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	out, err := h.ventasUC.GetByID(GetUsuarioID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado de una venta
// @Description  Cancelado es terminal: una venta cancelada no admite más cambios.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.UpdateEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/estado [patch]
func (h *VentaHandler) UpdateEstado(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateEstadoRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.ventasUC.UpdateEstado(GetUsuarioID(c), id, in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Estado actualizado exitosamente."})
}

// ReciboPDF godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/pdf [get]
func (h *VentaHandler) ReciboPDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	pdfBytes, err := h.ventasUC.ReciboPDF(c.UserContext(), GetUsuarioID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="recibo-venta-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
