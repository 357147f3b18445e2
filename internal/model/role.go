package model

import "github.com/google/uuid"

// Role (rol) names are unique; role identifiers are serial integers.
type Role struct {
	ID   int    `db:"id_rol" json:"id_rol"`
	Name string `db:"nombre_rol" json:"nombre_rol"`
}

type CreateRoleRequest struct {
	Name string `json:"nombre_rol" binding:"required"`
}

type UpdateRoleRequest struct {
	Name *string `json:"nombre_rol"`
}

type RoleFilter struct {
	Name string `form:"nombre"`
}

// UserRole joins a user to a role. The table permits several roles per user,
// though in practice a user carries exactly one.
type UserRole struct {
	UserID uuid.UUID `db:"id_usuario" json:"id_usuario"`
	RoleID int       `db:"id_rol" json:"id_rol"`
}

type AssignRoleRequest struct {
	UserID uuid.UUID `json:"id_usuario" binding:"required"`
	RoleID int       `json:"id_rol" binding:"required"`
}
