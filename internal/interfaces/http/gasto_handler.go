package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/expenses"
	"github.com/ventaplus/ventaplus-api/internal/application/reports"
)

// GastoHandler maneja las peticiones HTTP para gastos (protegido).
type GastoHandler struct {
	uc        *expenses.UseCase
	dashboard *reports.DashboardUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *expenses.UseCase, dashboard *reports.DashboardUseCase) *GastoHandler {
	return &GastoHandler{uc: uc, dashboard: dashboard}
}

// Create godoc
// @Summary      Crear gasto
// @Description  Inserta el gasto y registra el egreso en caja en una sola transacción.
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GastoRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	var in dto.GastoRequest
	if !parseBody(c, &in) {
		return nil
	}
	id, err := h.uc.Create(c.UserContext(), usuarioID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.dashboard.Invalidate(context.Background(), usuarioID)
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "Gasto registrado exitosamente."})
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por descripción"
// @Success      200  {array}  dto.GastoResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUsuarioID(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar gasto
// @Description  Corrige los datos del gasto; no genera movimiento de caja.
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del gasto"
// @Param        body  body  dto.GastoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.GastoRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Update(GetUsuarioID(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Gasto actualizado exitosamente."})
}

// Delete godoc
// @Summary      Eliminar gasto
// @Description  Borra el gasto y revierte su egreso con un ajuste compensatorio en caja.
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del gasto"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.UserContext(), usuarioID, id); err != nil {
		return respondError(c, err)
	}
	h.dashboard.Invalidate(context.Background(), usuarioID)
	return c.JSON(dto.MensajeResponse{Message: "Gasto eliminado exitosamente."})
}
