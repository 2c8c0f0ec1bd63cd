package usecase

import (
	"context"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
	"github.com/jhoicas/auth-service/pkg/logger"
	"github.com/jhoicas/auth-service/pkg/result"
)

// UserUseCase consultas sobre usuarios. La creación de usuarios pasa por el
// orquestador de onboarding (internal/application/auth).
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

// GetByID obtiene un usuario por ID. Las referencias a rol y empresa se
// devuelven como ids explícitos; el cliente decide si las resuelve.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) result.Result[dto.UserResponse] {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failInternal[dto.UserResponse](uc.log, err, "obtener usuario")
	}
	if user == nil {
		uc.log.Warn().Str("user_id", id).Msg("usuario no encontrado")
		return result.FailMsg[dto.UserResponse](domain.ErrNotFound, "Usuario no encontrado.")
	}
	return result.Ok(toUserResponse(user))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
