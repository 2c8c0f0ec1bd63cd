package repository

import (
	"context"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	// GetByName busca por nombre sin distinguir mayúsculas. (nil, nil) si no existe.
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	List(ctx context.Context, limit, offset int) ([]*entity.Role, error)
	// Delete falla con domain.ErrConflict si algún usuario referencia el rol.
	Delete(ctx context.Context, id string) error
}
