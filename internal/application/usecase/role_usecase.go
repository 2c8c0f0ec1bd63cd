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

// RoleUseCase aplica reglas de negocio para roles.
type RoleUseCase struct {
	repo repository.RoleRepository
	log  *logger.Logger
}

// NewRoleUseCase construye el caso de uso con el puerto de persistencia.
func NewRoleUseCase(repo repository.RoleRepository, log *logger.Logger) *RoleUseCase {
	return &RoleUseCase{repo: repo, log: log}
}

// Create crea un rol. El nombre es único sin distinguir mayúsculas.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) result.Result[dto.RoleResponse] {
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if violations := validation.ValidateRole(role); len(violations) > 0 {
		return result.FailMsg[dto.RoleResponse](domain.ErrInvalidInput, strings.Join(violations, "; "))
	}

	existing, err := uc.repo.GetByName(ctx, role.Name)
	if err != nil {
		return failInternal[dto.RoleResponse](uc.log, err, "crear rol")
	}
	if existing != nil {
		uc.log.Warn().Str("name", role.Name).Msg("rol con ese nombre ya existe")
		return result.FailMsg[dto.RoleResponse](domain.ErrDuplicate, "Ya existe un rol con ese nombre.")
	}

	if err := uc.repo.Create(ctx, role); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return result.FailMsg[dto.RoleResponse](domain.ErrDuplicate, "Ya existe un rol con ese nombre.")
		}
		return failInternal[dto.RoleResponse](uc.log, err, "crear rol")
	}
	return result.Ok(toRoleResponse(role))
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) result.Result[dto.RoleResponse] {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.RoleResponse](uc.log, err, "obtener rol")
	}
	if role == nil {
		return result.FailMsg[dto.RoleResponse](domain.ErrNotFound, "Rol no encontrado.")
	}
	return result.Ok(toRoleResponse(role))
}

// List lista roles con paginación. Parámetros inválidos se rechazan.
func (uc *RoleUseCase) List(ctx context.Context, limit, offset int) result.Result[dto.RoleListResponse] {
	if limit <= 0 || offset < 0 {
		return result.FailMsg[dto.RoleListResponse](domain.ErrInvalidInput, "Parámetros de paginación inválidos.")
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return failInternal[dto.RoleListResponse](uc.log, err, "listar roles")
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRoleResponse(r))
	}
	return result.Ok(dto.RoleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Update edita nombre y/o descripción de un rol existente.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) result.Result[dto.RoleResponse] {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.RoleResponse](uc.log, err, "actualizar rol")
	}
	if role == nil {
		return result.FailMsg[dto.RoleResponse](domain.ErrNotFound, "Rol no encontrado.")
	}

	if in.Name != nil {
		role.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		role.Description = *in.Description
	}

	if violations := validation.ValidateRole(role); len(violations) > 0 {
		return result.FailMsg[dto.RoleResponse](domain.ErrInvalidInput, strings.Join(violations, "; "))
	}

	if in.Name != nil {
		other, err := uc.repo.GetByName(ctx, role.Name)
		if err != nil {
			return failInternal[dto.RoleResponse](uc.log, err, "actualizar rol")
		}
		if other != nil && other.ID != role.ID {
			return result.FailMsg[dto.RoleResponse](domain.ErrDuplicate, "Ya existe un rol con ese nombre.")
		}
	}

	if err := uc.repo.Update(ctx, role); err != nil {
		return failInternal[dto.RoleResponse](uc.log, err, "actualizar rol")
	}
	return result.Ok(toRoleResponse(role))
}

// Delete elimina un rol. Falla si algún usuario lo referencia (FK en RESTRICT).
func (uc *RoleUseCase) Delete(ctx context.Context, id string) result.Result[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return result.FailMsg[bool](domain.ErrConflict, "No se puede eliminar: existen usuarios asociados al rol.")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return result.FailMsg[bool](domain.ErrNotFound, "Rol no encontrado.")
		}
		return failInternal[bool](uc.log, err, "eliminar rol")
	}
	return result.Ok(true)
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
