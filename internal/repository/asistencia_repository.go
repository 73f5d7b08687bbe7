package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

// AsistenciaRepository persists per-date teacher attendance.
type AsistenciaRepository struct {
	db *sqlx.DB
}

// NewAsistenciaRepository constructs an AsistenciaRepository.
func NewAsistenciaRepository(db *sqlx.DB) *AsistenciaRepository {
	return &AsistenciaRepository{db: db}
}

// ListParesActivos returns the teacher-subject pairs currently
// assigned to active teachers. These pairs seed the expected record
// set for any attendance date.
func (r *AsistenciaRepository) ListParesActivos(ctx context.Context) ([]models.ParAsignacion, error) {
	const query = `
SELECT pm.id_profesor, p.nombre AS profesor_nombre, pm.id_materia, m.nombre AS materia_nombre
FROM profesor_materia pm
JOIN profesor p ON p.id_profesor = pm.id_profesor
JOIN materia m ON m.id_materia = pm.id_materia
WHERE p.activo = TRUE
ORDER BY p.nombre ASC, m.nombre ASC`
	var pares []models.ParAsignacion
	if err := r.db.SelectContext(ctx, &pares, query); err != nil {
		return nil, fmt.Errorf("list pares activos: %w", err)
	}
	return pares, nil
}

// ListByFecha returns saved attendance rows for one date.
func (r *AsistenciaRepository) ListByFecha(ctx context.Context, fecha string) ([]models.AsistenciaProfesor, error) {
	const query = `
SELECT id_asistencia, to_char(fecha, 'YYYY-MM-DD') AS fecha, id_profesor, id_materia, presente, observacion
FROM asistencia_profesor
WHERE fecha = $1::date`
	var registros []models.AsistenciaProfesor
	if err := r.db.SelectContext(ctx, &registros, query, fecha); err != nil {
		return nil, fmt.Errorf("list asistencias for %s: %w", fecha, err)
	}
	return registros, nil
}

// ReplaceForFecha swaps the full attendance set for a date. Delete and
// insert run inside one transaction so concurrent readers never see a
// transiently empty day and a competing save cannot interleave.
func (r *AsistenciaRepository) ReplaceForFecha(ctx context.Context, fecha string, registros []models.AsistenciaProfesor) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace asistencias: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM asistencia_profesor WHERE fecha = $1::date`, fecha); err != nil {
		return fmt.Errorf("clear asistencias for %s: %w", fecha, err)
	}

	const insertQuery = `
INSERT INTO asistencia_profesor (fecha, id_profesor, id_materia, presente, observacion)
VALUES ($1::date, $2, $3, $4, $5)`
	for _, registro := range registros {
		if _, err := tx.ExecContext(ctx, insertQuery,
			fecha, registro.IDProfesor, registro.IDMateria, registro.Presente, registro.Observacion,
		); err != nil {
			return fmt.Errorf("insert asistencia: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace asistencias: %w", err)
	}
	return nil
}
