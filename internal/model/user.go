package model

import "github.com/google/uuid"

// User represents a system user (usuario). PasswordHash never leaves the API.
type User struct {
	ID           uuid.UUID `db:"id_usuario" json:"id_usuario"`
	Username     string    `db:"nombre_usuario" json:"nombre_usuario"`
	FullName     string    `db:"nombre_completo" json:"nombre_completo"`
	Email        *string   `db:"correo_electronico" json:"correo_electronico"`
	PasswordHash string    `db:"contrasena_hash" json:"-"`
	Estado       Lifecycle `db:"estado" json:"estado"`
}

// UserWithRole is a user joined to its assigned role name.
type UserWithRole struct {
	ID       uuid.UUID `db:"id_usuario" json:"id_usuario"`
	Username string    `db:"nombre_usuario" json:"nombre_usuario"`
	FullName string    `db:"nombre_completo" json:"nombre_completo"`
	Email    *string   `db:"correo_electronico" json:"correo_electronico"`
	Estado   Lifecycle `db:"estado" json:"estado"`
	Role     string    `db:"nombre_rol" json:"rol"`
}

type CreateUserRequest struct {
	Username string  `json:"nombre_usuario" binding:"required"`
	FullName string  `json:"nombre_completo" binding:"required"`
	Email    *string `json:"correo_electronico" binding:"omitempty,email"`
	Password string  `json:"contrasena" binding:"required,min=8"`
	RoleID   int     `json:"id_rol" binding:"required"`
}

type UpdateUserRequest struct {
	Username *string    `json:"nombre_usuario"`
	FullName *string    `json:"nombre_completo"`
	Email    *string    `json:"correo_electronico" binding:"omitempty,email"`
	Password *string    `json:"contrasena" binding:"omitempty,min=8"`
	RoleID   *int       `json:"id_rol"`
	Estado   *Lifecycle `json:"estado" binding:"omitempty,estado"`
}

type UserFilter struct {
	Role   string `form:"rol"`
	Name   string `form:"nombre"`
	Email  string `form:"correo"`
	Estado string `form:"estado" binding:"omitempty,estado"`
}
