package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/usecase"
)

// UserHandler consultas sobre usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetByID devuelve un usuario por id (sin hash de contraseña).
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}
