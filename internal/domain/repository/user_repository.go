package repository

import (
	"context"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La verificación de unicidad de email en aplicación es solo un atajo: la
// fuente de verdad es el índice único de la tabla, y Create debe devolver
// domain.ErrEmailAlreadyExists cuando ese índice rechaza el insert.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
