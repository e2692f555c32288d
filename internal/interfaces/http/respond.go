package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
)

// respondOK respuesta 200 con envelope estándar.
func respondOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

// respondCreated respuesta 201 con envelope estándar.
func respondCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{Success: true, Message: message, Data: data})
}

// respondError mapea errores de dominio a status HTTP y envelope de error.
// Los rechazos por stock insuficiente incluyen el detalle de la escasez.
func respondError(c *fiber.Ctx, err error) error {
	var shortage *domain.StockShortageError
	if errors.As(err, &shortage) {
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{
			Success: false,
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente",
			Data: fiber.Map{
				"item_id":            shortage.ItemID,
				"requested_quantity": shortage.Requested,
				"current_stock":      shortage.Available,
			},
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{Success: false, Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{Success: false, Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{Success: false, Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.Envelope{Success: false, Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{Success: false, Code: "INTERNAL", Message: err.Error()})
	}
}

// respondBadBody respuesta para bodies que no parsean.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
