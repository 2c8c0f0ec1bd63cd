package auth

import (
	"context"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// PasswordHasher puerto del hasher de credenciales. Hash falla con contraseña
// vacía; Verify nunca falla, devuelve false ante un hash corrupto.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// Contrato mínimo que el onboarding exige al almacenamiento. Los métodos Get
// devuelven (nil, nil) cuando no hay fila; Create de usuario devuelve
// domain.ErrEmailAlreadyExists cuando el índice único rechaza el insert.
type (
	CompanyFinder interface {
		GetByID(ctx context.Context, id string) (*entity.Company, error)
	}
	RoleFinder interface {
		GetByName(ctx context.Context, name string) (*entity.Role, error)
	}
	UserStore interface {
		GetByEmail(ctx context.Context, email string) (*entity.User, error)
		Create(ctx context.Context, user *entity.User) error
	}
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// accesos al almacenamiento atados a esa tx. Garantiza que el onboarding sea
// todo-o-nada: si fn devuelve error no queda visible ninguna fila a medio crear.
type TxRunner interface {
	Run(ctx context.Context, fn func(companies CompanyFinder, roles RoleFinder, users UserStore) error) error
}
