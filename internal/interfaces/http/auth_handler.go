package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/dto"
)

// AuthHandler maneja el onboarding de empresas (registro del primer admin).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterAdmin godoc
// @Summary      Registrar usuario administrador de una empresa existente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdminRequest  true  "company_id, first_name, last_name, email, password"
// @Success      201   {object}  dto.RegisterAdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in dto.RegisterAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}

	res := h.uc.RegisterCompanyAdmin(c.UserContext(), in)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Data)
}
