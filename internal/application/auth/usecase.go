package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/validation"
	"github.com/jhoicas/auth-service/pkg/jwt"
	"github.com/jhoicas/auth-service/pkg/logger"
	"github.com/jhoicas/auth-service/pkg/result"
)

// AuthUseCase orquesta el onboarding de una empresa: crea su primer usuario
// administrador, le asigna el rol reservado y emite el token de acceso.
type AuthUseCase struct {
	tx     TxRunner
	hasher PasswordHasher
	jwtCfg jwt.Config
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth con sus dependencias explícitas.
func NewAuthUseCase(tx TxRunner, hasher PasswordHasher, jwtCfg jwt.Config, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{tx: tx, hasher: hasher, jwtCfg: jwtCfg, log: log}
}

// RegisterCompanyAdmin registra el usuario administrador de una empresa existente:
//  1. verifica que la empresa exista
//  2. valida que el correo no esté registrado (atajo; el índice único decide)
//  3. resuelve el rol reservado "AdminCompany"
//  4. hashea la contraseña con Argon2id
//  5. persiste el usuario (id nuevo, activo, timestamps)
//  6. emite el JWT con sub, email, companyId y rol
//
// Todos los pasos corren dentro de una sola transacción: cualquier fallo,
// incluida la emisión del token, revierte y no queda usuario a medio crear. Un
// insert perdedor de una carrera por el mismo correo se reporta igual que el
// duplicado detectado en el paso 2.
func (uc *AuthUseCase) RegisterCompanyAdmin(ctx context.Context, in dto.RegisterAdminRequest) result.Result[dto.RegisterAdminResponse] {
	if violations := validation.ValidateUserDraft(validation.UserDraft{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
	}); len(violations) > 0 {
		return result.FailMsg[dto.RegisterAdminResponse](domain.ErrInvalidInput, strings.Join(violations, "; "))
	}

	var created *entity.User
	var token string

	err := uc.tx.Run(ctx, func(companies CompanyFinder, roles RoleFinder, users UserStore) error {
		company, err := companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			uc.log.Warn().Str("company_id", in.CompanyID).Msg("intento de registrar admin para empresa inexistente")
			return domain.ErrCompanyNotFound
		}

		existing, err := users.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			uc.log.Warn().Str("email", in.Email).Msg("intento de registrar usuario con correo duplicado")
			return domain.ErrEmailAlreadyExists
		}

		adminRole, err := roles.GetByName(ctx, entity.RoleAdminCompany)
		if err != nil {
			return err
		}
		if adminRole == nil {
			uc.log.Error().Msg("el rol 'AdminCompany' no está configurado en la base de datos")
			return domain.ErrRoleNotConfigured
		}

		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return domain.ErrInvalidInput
		}

		now := time.Now().UTC()
		user := &entity.User{
			ID:           uuid.New().String(),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
			Phone:        validation.NormalizePhone(in.Phone),
			RoleID:       adminRole.ID,
			CompanyID:    company.ID,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, user); err != nil {
			// Perdedor de la carrera check-then-act: el índice único lo reporta
			// como el mismo fallo de negocio, nunca como error de infraestructura.
			return err
		}

		// El token se emite antes del Commit: si la emisión falla, la tx
		// revierte y no queda un usuario persistido sin su token.
		token, err = jwt.Generate(uc.jwtCfg, user.ID, user.Email, user.CompanyID, adminRole.Name)
		if err != nil {
			return fmt.Errorf("emitir token: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		return uc.failRegister(in, err)
	}

	uc.log.Info().Str("company_id", created.CompanyID).Str("user_id", created.ID).Msg("usuario administrador creado correctamente")

	return result.Ok(dto.RegisterAdminResponse{
		User:  toUserResponse(created),
		Token: token,
	})
}

// failRegister clasifica el error del flujo: los fallos de regla de negocio se
// devuelven tal cual en la rama de fallo; lo inesperado se registra con contexto
// (nunca la contraseña) y se degrada a un error interno genérico.
func (uc *AuthUseCase) failRegister(in dto.RegisterAdminRequest, err error) result.Result[dto.RegisterAdminResponse] {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrRoleNotConfigured),
		errors.Is(err, domain.ErrInvalidInput):
		return result.Fail[dto.RegisterAdminResponse](err)
	default:
		uc.log.Error().Err(err).Str("company_id", in.CompanyID).Str("email", in.Email).Msg("error al crear usuario administrador")
		return result.FailMsg[dto.RegisterAdminResponse](domain.ErrStoreUnavailable, "error interno")
	}
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
