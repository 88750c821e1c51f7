package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/domain"
)

// validate instancia compartida; los tags `validate` viven en los DTOs.
var validate = validator.New()

func dtoError(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: msg}
}

// parseBody decodifica el JSON del body y aplica las reglas `validate` del DTO.
// Si falla, responde 400 y retorna false.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dtoError("INVALID_BODY", "cuerpo inválido"))
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dtoError("VALIDATION", err.Error()))
		return false
	}
	return true
}

// paramID lee un parámetro de ruta numérico; responde 400 si no es válido.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dtoError("MISSING_ID", name+" inválido"))
		return 0, false
	}
	return int64(id), true
}

// queryFecha parsea un query param de fecha YYYY-MM-DD; cero si está ausente.
func queryFecha(c *fiber.Ctx, name string) time.Time {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	// "hasta" incluye el día completo
	if name == "hasta" {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}

// respondError mapea errores de dominio a códigos HTTP con mensaje en español.
func respondError(c *fiber.Ctx, err error) error {
	var noEncontrado *sales.ProductoNoEncontradoError
	if errors.As(err, &noEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(dtoError("NOT_FOUND", noEncontrado.Error()))
	}
	var sinStock *sales.StockInsuficienteError
	if errors.As(err, &sinStock) {
		return c.Status(fiber.StatusBadRequest).JSON(dtoError("INSUFFICIENT_STOCK", sinStock.Error()))
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dtoError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dtoError("NOT_FOUND", err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dtoError("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dtoError("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrReferenced):
		return c.Status(fiber.StatusConflict).JSON(dtoError("REFERENCED", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dtoError("UNAUTHORIZED", "Credenciales inválidas."))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dtoError("FORBIDDEN", err.Error()))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dtoError("INSUFFICIENT_STOCK", err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dtoError("INTERNAL", err.Error()))
}
