package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type roleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	query := `INSERT INTO roles (nombre_rol) VALUES ($1) RETURNING id_rol`
	err := r.db.GetContext(ctx, &role.ID, query, role.Name)
	if isUniqueViolation(err) {
		return errors.BadRequest("role already exists", err)
	}
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *roleRepository) Get(ctx context.Context, id int) (*model.Role, error) {
	query := `SELECT * FROM roles WHERE id_rol = $1`
	var role model.Role
	err := r.db.GetContext(ctx, &role, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("role", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	query := `UPDATE roles SET nombre_rol = $1 WHERE id_rol = $2`
	_, err := r.db.ExecContext(ctx, query, role.Name, role.ID)
	if isUniqueViolation(err) {
		return errors.BadRequest("role already exists", err)
	}
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

func (r *roleRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM roles WHERE id_rol = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (r *roleRepository) List(ctx context.Context, filter *model.RoleFilter) ([]*model.Role, error) {
	qb := &queryBuilder{}
	if filter.Name != "" {
		qb.ILike("nombre_rol", filter.Name)
	}

	query, args := qb.Build(`SELECT * FROM roles`)

	roles := []*model.Role{}
	if err := r.db.SelectContext(ctx, &roles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

type userRoleRepository struct {
	db *sqlx.DB
}

func NewUserRoleRepository(db *sqlx.DB) repository.UserRoleRepository {
	return &userRoleRepository{db: db}
}

func (r *userRoleRepository) Assign(ctx context.Context, assignment *model.UserRole) error {
	query := `INSERT INTO usuarios_roles (id_usuario, id_rol) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, assignment.UserID, assignment.RoleID)
	if isUniqueViolation(err) {
		return errors.BadRequest("user-role assignment already exists", err)
	}
	if err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

func (r *userRoleRepository) Reassign(ctx context.Context, userID uuid.UUID, roleID int) error {
	query := `UPDATE usuarios_roles SET id_rol = $1 WHERE id_usuario = $2`
	res, err := r.db.ExecContext(ctx, query, roleID, userID)
	if err != nil {
		return fmt.Errorf("failed to reassign role: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("role assignment", nil)
	}
	return nil
}

func (r *userRoleRepository) List(ctx context.Context) ([]*model.UserRole, error) {
	assignments := []*model.UserRole{}
	if err := r.db.SelectContext(ctx, &assignments, `SELECT * FROM usuarios_roles`); err != nil {
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}
	return assignments, nil
}

func (r *userRoleRepository) Remove(ctx context.Context, userID uuid.UUID, roleID int) error {
	query := `DELETE FROM usuarios_roles WHERE id_usuario = $1 AND id_rol = $2`
	res, err := r.db.ExecContext(ctx, query, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to remove role assignment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("role assignment", nil)
	}
	return nil
}
