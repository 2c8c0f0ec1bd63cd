package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
)

// CompanyHandler maneja el CRUD de empresas.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name, address y opcionales"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.uc.Create(c.UserContext(), in)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Data)
}

// GetByID devuelve una empresa por id.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// List devuelve empresas paginadas.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
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

// Update modifica campos de una empresa.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// Deactivate borra lógicamente la empresa (reversible).
func (h *CompanyHandler) Deactivate(c *fiber.Ctx) error {
	res := h.uc.Deactivate(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// Reactivate reactiva una empresa desactivada.
func (h *CompanyHandler) Reactivate(c *fiber.Ctx) error {
	res := h.uc.Reactivate(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.JSON(res.Data)
}

// Delete elimina físicamente la empresa (409 si tiene usuarios).
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	res := h.uc.Delete(c.UserContext(), c.Params("id"))
	if !res.Success {
		return writeFailure(c, res.Err(), res.Message)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
