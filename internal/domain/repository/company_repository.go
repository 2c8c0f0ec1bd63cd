package repository

import (
	"context"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los métodos Get devuelven
// (nil, nil) cuando no hay fila.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	// SetActive activa o desactiva (borrado lógico) la empresa.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete falla con domain.ErrConflict si algún usuario referencia la empresa.
	Delete(ctx context.Context, id string) error
}
