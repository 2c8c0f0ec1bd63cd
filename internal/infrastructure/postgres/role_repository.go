package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
// Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

const roleColumns = `id, name, description, created_at`

// Create persiste un nuevo rol. La unicidad case-insensitive del nombre la
// garantiza un índice único sobre LOWER(name).
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `INSERT INTO roles (` + roleColumns + `) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, role.ID, role.Name, role.Description, role.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID. (nil, nil) si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByName obtiene un rol por nombre sin distinguir mayúsculas.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE LOWER(name) = LOWER($1)`
	return r.scanOne(ctx, query, name)
}

func (r *RoleRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, query, arg).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// Update edita nombre y descripción de un rol (CreatedAt no se toca).
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	cmd, err := r.q.Exec(ctx, `UPDATE roles SET name = $2, description = $3 WHERE id = $1`,
		role.ID, role.Name, role.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve roles con paginación.
func (r *RoleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete elimina un rol por ID. La FK users.role_id está en RESTRICT:
// si hay usuarios asociados se devuelve ErrConflict.
func (r *RoleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
