package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

// RolRepository reads and writes the role store: one row per user
// identifier in the user_roles table.
type RolRepository struct {
	db *sqlx.DB
}

// NewRolRepository constructs a RolRepository.
func NewRolRepository(db *sqlx.DB) *RolRepository {
	return &RolRepository{db: db}
}

// FindByUserID returns the stored role for a user. sql.ErrNoRows is
// passed through so callers can distinguish "no assignment" from a
// store failure.
func (r *RolRepository) FindByUserID(ctx context.Context, userID string) (models.Rol, error) {
	const query = `SELECT role FROM user_roles WHERE id = $1 LIMIT 1`
	var raw string
	if err := r.db.GetContext(ctx, &raw, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("find role for user: %w", err)
	}
	return models.ParseRol(raw), nil
}

// Upsert writes the single role row for a user, replacing any
// previous assignment.
func (r *RolRepository) Upsert(ctx context.Context, userID string, rol models.Rol) error {
	const query = `
INSERT INTO user_roles (id, role) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role`
	if _, err := r.db.ExecContext(ctx, query, userID, rol); err != nil {
		return fmt.Errorf("upsert user role: %w", err)
	}
	return nil
}

// ListAll returns every role assignment.
func (r *RolRepository) ListAll(ctx context.Context) ([]models.AsignacionRol, error) {
	const query = `SELECT id, role FROM user_roles`
	var asignaciones []models.AsignacionRol
	if err := r.db.SelectContext(ctx, &asignaciones, query); err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	return asignaciones, nil
}
