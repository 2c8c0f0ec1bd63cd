package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
)

// writeFailure traduce la rama de fallo de un Result a una respuesta HTTP.
// El sentinel de dominio decide el status; el mensaje viaja tal cual.
func writeFailure(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		status, code = fiber.StatusNotFound, "COMPANY_NOT_FOUND"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code = fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrRoleNotConfigured):
		// Despliegue roto: el cliente no puede corregirlo.
		status, code = fiber.StatusInternalServerError, "CONFIG_MISSING"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
