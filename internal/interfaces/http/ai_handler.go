package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/usecase"
	"github.com/ventaplus/ventaplus-api/internal/domain"
)

// AIHandler maneja la generación de descripciones con IA (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerarDescripcion godoc
// @Summary      Generar descripción de producto con IA
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescripcionRequest  true  "Nombre y categoría del producto"
// @Success      200   {object}  dto.DescripcionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/generate-description [post]
func (h *AIHandler) GenerarDescripcion(c *fiber.Ctx) error {
	var in dto.DescripcionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.GenerarDescripcion(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dtoError("AI_UNAVAILABLE", "No se pudo generar la descripción."))
	}
	return c.JSON(out)
}
