package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/purchases"
)

// CompraHandler maneja las peticiones HTTP para compras a proveedor (protegido).
type CompraHandler struct {
	uc *purchases.UseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *purchases.UseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra a proveedor
// @Description  Inserta la compra, suma stock y recalcula el costo promedio ponderado en una sola transacción.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompraRequest  true  "Compra"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompraRequest
	if !parseBody(c, &in) {
		return nil
	}
	id, err := h.uc.Create(c.UserContext(), GetUsuarioID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id, Message: "Compra registrada exitosamente."})
}

// List godoc
// @Summary      Listar compras
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CompraResumenResponse
// @Router       /api/compras [get]
func (h *CompraHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
