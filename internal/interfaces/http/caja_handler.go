package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
)

// CajaHandler maneja las peticiones HTTP para el libro de caja (protegido).
type CajaHandler struct {
	uc *cash.UseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *cash.UseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Saldo godoc
// @Summary      Saldo actual de caja
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaldoResponse
// @Router       /api/caja/saldo [get]
func (h *CajaHandler) Saldo(c *fiber.Ctx) error {
	out, err := h.uc.SaldoActual(GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Historial de movimientos de caja
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/caja/movimientos [get]
func (h *CajaHandler) Movimientos(c *fiber.Ctx) error {
	out, err := h.uc.Movimientos(GetUsuarioID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateAjuste godoc
// @Summary      Registrar ajuste manual de caja
// @Description  El monto puede ser positivo o negativo; el libro es append-only.
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAjusteRequest  true  "Ajuste"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja/ajustes [post]
func (h *CajaHandler) CreateAjuste(c *fiber.Ctx) error {
	var in dto.CreateAjusteRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.CreateAjuste(c.UserContext(), GetUsuarioID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "Ajuste registrado exitosamente."})
}
