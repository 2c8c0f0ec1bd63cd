package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
)

// RoleHandler maneja el CRUD de roles (restringido a administradores).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler de roles.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create crea un rol.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.uc.Create(c.UserContext(), in)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Data)
}

// GetByID devuelve un rol por id.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// List devuelve roles paginados.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	res := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// Update edita nombre/descripción de un rol.
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// Delete elimina un rol (409 si está referenciado por usuarios).
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	res := h.uc.Delete(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
