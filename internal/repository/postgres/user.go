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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateWithRole inserts the user and its role assignment in one transaction
// so a failed assignment never leaves a role-less user behind.
func (r *userRepository) CreateWithRole(ctx context.Context, user *model.User, roleID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO usuarios (id_usuario, nombre_usuario, nombre_completo, correo_electronico, contrasena_hash, estado)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, userQuery,
		user.ID,
		user.Username,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Estado,
	)
	if isUniqueViolation(err) {
		return errors.BadRequest("username already exists", err)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	roleQuery := `INSERT INTO usuarios_roles (id_usuario, id_rol) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, roleQuery, user.ID, roleID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT * FROM usuarios WHERE id_usuario = $1`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

const userWithRoleSelect = `
	SELECT u.id_usuario, u.nombre_usuario, u.nombre_completo, u.correo_electronico, u.estado, r.nombre_rol
	FROM usuarios u
	JOIN usuarios_roles ur ON u.id_usuario = ur.id_usuario
	JOIN roles r ON r.id_rol = ur.id_rol
`

func (r *userRepository) GetWithRole(ctx context.Context, id uuid.UUID) (*model.UserWithRole, error) {
	query := userWithRoleSelect + ` WHERE u.id_usuario = $1`
	var user model.UserWithRole
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user with role: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM usuarios WHERE correo_electronico = $1`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM usuarios WHERE nombre_usuario = $1`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE usuarios
		SET nombre_usuario = $1, nombre_completo = $2, correo_electronico = $3, contrasena_hash = $4, estado = $5
		WHERE id_usuario = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Estado,
		user.ID,
	)
	if isUniqueViolation(err) {
		return errors.BadRequest("username already exists", err)
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) ListWithRole(ctx context.Context, filter *model.UserFilter) ([]*model.UserWithRole, error) {
	qb := &queryBuilder{}
	if filter.Role != "" {
		qb.Eq("r.nombre_rol", filter.Role)
	}
	if filter.Name != "" {
		qb.ILike("u.nombre_completo", filter.Name)
	}
	if filter.Email != "" {
		qb.ILike("u.correo_electronico", filter.Email)
	}
	if filter.Estado != "" {
		qb.Eq("u.estado", filter.Estado)
	}

	query, args := qb.Build(userWithRoleSelect)

	users := []*model.UserWithRole{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) RoleName(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `
		SELECT r.nombre_rol
		FROM roles r
		JOIN usuarios_roles ur ON r.id_rol = ur.id_rol
		WHERE ur.id_usuario = $1
	`
	var name string
	err := r.db.GetContext(ctx, &name, query, userID)
	if err == sql.ErrNoRows {
		return "", errors.NotFound("role assignment", err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	return name, nil
}
