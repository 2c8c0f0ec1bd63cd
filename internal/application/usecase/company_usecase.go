package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
	"github.com/jhoicas/auth-service/internal/domain/validation"
	"github.com/jhoicas/auth-service/pkg/logger"
	"github.com/jhoicas/auth-service/pkg/result"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	log  *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, log: log}
}

// Create crea una nueva empresa: valida (reportando todas las violaciones),
// normaliza el teléfono y verifica que el nombre sea único global.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) result.Result[dto.CompanyResponse] {
	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		RUC:       in.RUC,
		Address:   in.Address,
		Phone:     validation.NormalizePhone(in.Phone),
		Email:     in.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if violations := validation.ValidateCompany(company); len(violations) > 0 {
		msg := strings.Join(violations, "; ")
		uc.log.Warn().Str("message", msg).Msg("errores de validación al crear empresa")
		return result.FailMsg[dto.CompanyResponse](domain.ErrInvalidInput, msg)
	}

	existing, err := uc.repo.GetByName(ctx, company.Name)
	if err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "crear empresa")
	}
	if existing != nil {
		return result.FailMsg[dto.CompanyResponse](domain.ErrDuplicate, "Ya existe una empresa con ese nombre.")
	}

	if err := uc.repo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return result.FailMsg[dto.CompanyResponse](domain.ErrDuplicate, "Ya existe una empresa con ese nombre.")
		}
		return failInternal[dto.CompanyResponse](uc.log, err, "crear empresa")
	}
	return result.Ok(toCompanyResponse(company))
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) result.Result[dto.CompanyResponse] {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "obtener empresa")
	}
	if company == nil {
		return result.FailMsg[dto.CompanyResponse](domain.ErrNotFound, "Empresa no encontrada.")
	}
	return result.Ok(toCompanyResponse(company))
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) result.Result[dto.CompanyListResponse] {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return failInternal[dto.CompanyListResponse](uc.log, err, "listar empresas")
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return result.Ok(dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Update modifica la empresa en sitio conservando CreatedAt. Campos nil no se tocan.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) result.Result[dto.CompanyResponse] {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "actualizar empresa")
	}
	if company == nil {
		return result.FailMsg[dto.CompanyResponse](domain.ErrNotFound, "Empresa no encontrada.")
	}

	if in.Name != nil {
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.RUC != nil {
		company.RUC = *in.RUC
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = validation.NormalizePhone(*in.Phone)
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now().UTC()

	if violations := validation.ValidateCompany(company); len(violations) > 0 {
		return result.FailMsg[dto.CompanyResponse](domain.ErrInvalidInput, strings.Join(violations, "; "))
	}

	if in.Name != nil {
		other, err := uc.repo.GetByName(ctx, company.Name)
		if err != nil {
			return failInternal[dto.CompanyResponse](uc.log, err, "actualizar empresa")
		}
		if other != nil && other.ID != company.ID {
			return result.FailMsg[dto.CompanyResponse](domain.ErrDuplicate, "Ya existe una empresa con ese nombre.")
		}
	}

	if err := uc.repo.Update(ctx, company); err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "actualizar empresa")
	}
	return result.Ok(toCompanyResponse(company))
}

// Deactivate desactiva la empresa (borrado lógico, reversible con Reactivate).
func (uc *CompanyUseCase) Deactivate(ctx context.Context, id string) result.Result[dto.CompanyResponse] {
	return uc.setActive(ctx, id, false)
}

// Reactivate vuelve a activar una empresa desactivada.
func (uc *CompanyUseCase) Reactivate(ctx context.Context, id string) result.Result[dto.CompanyResponse] {
	return uc.setActive(ctx, id, true)
}

func (uc *CompanyUseCase) setActive(ctx context.Context, id string, active bool) result.Result[dto.CompanyResponse] {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "cambiar estado de empresa")
	}
	if company == nil {
		return result.FailMsg[dto.CompanyResponse](domain.ErrNotFound, "Empresa no encontrada.")
	}
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return failInternal[dto.CompanyResponse](uc.log, err, "cambiar estado de empresa")
	}
	company.IsActive = active
	company.UpdatedAt = time.Now().UTC()
	return result.Ok(toCompanyResponse(company))
}

// Delete elimina físicamente la empresa. Falla si algún usuario la referencia:
// la FK está en RESTRICT, nunca en cascada.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) result.Result[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return result.FailMsg[bool](domain.ErrConflict, "No se puede eliminar: existen usuarios asociados a la empresa.")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return result.FailMsg[bool](domain.ErrNotFound, "Empresa no encontrada.")
		}
		return failInternal[bool](uc.log, err, "eliminar empresa")
	}
	return result.Ok(true)
}

// failInternal registra el error inesperado y lo degrada a un fallo interno
// genérico; el detalle de infraestructura nunca llega al cliente.
func failInternal[T any](log *logger.Logger, err error, op string) result.Result[T] {
	log.Error().Err(err).Msg(op)
	return result.FailMsg[T](domain.ErrStoreUnavailable, "error interno")
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		RUC:       c.RUC,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
