package models

import "time"

// User represents an identity-provider user stored in the users table.
// The role column is a best-effort mirror of the role store; the
// user_roles table stays authoritative.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Nombre       string     `db:"nombre" json:"nombre"`
	Role         Rol        `db:"role" json:"role"`
	LastLogin    *time.Time `db:"last_login" json:"last_sign_in_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// UsuarioConRol merges an identity user with its role-store assignment
// for the admin listing. Rol defaults to the unprivileged tier when no
// assignment row exists.
type UsuarioConRol struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Nombre    string     `json:"nombre"`
	Rol       Rol        `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_sign_in_at,omitempty"`
}
