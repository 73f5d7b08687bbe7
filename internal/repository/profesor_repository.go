package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

// ProfesorRepository manages persistence for teachers and their
// subject assignments.
type ProfesorRepository struct {
	db *sqlx.DB
}

// NewProfesorRepository constructs a ProfesorRepository.
func NewProfesorRepository(db *sqlx.DB) *ProfesorRepository {
	return &ProfesorRepository{db: db}
}

const profesorColumns = `id_profesor, nombre, genero, email, direccion, telefono, dni, situacion_revista, activo, created_at, updated_at`

type profesorMateriaRow struct {
	IDProfesor  int64   `db:"id_profesor"`
	IDMateria   int64   `db:"id_materia"`
	Nombre      string  `db:"nombre"`
	Descripcion *string `db:"descripcion"`
}

// ListActivos returns active teachers ordered by name, each with its
// assigned subjects attached.
func (r *ProfesorRepository) ListActivos(ctx context.Context) ([]models.Profesor, error) {
	query := fmt.Sprintf("SELECT %s FROM profesor WHERE activo = TRUE ORDER BY nombre ASC", profesorColumns)
	var profesores []models.Profesor
	if err := r.db.SelectContext(ctx, &profesores, query); err != nil {
		return nil, fmt.Errorf("list profesores: %w", err)
	}

	const materiasQuery = `
SELECT pm.id_profesor, m.id_materia, m.nombre, m.descripcion
FROM profesor_materia pm
JOIN materia m ON m.id_materia = pm.id_materia
JOIN profesor p ON p.id_profesor = pm.id_profesor
WHERE p.activo = TRUE
ORDER BY m.nombre ASC`
	var rows []profesorMateriaRow
	if err := r.db.SelectContext(ctx, &rows, materiasQuery); err != nil {
		return nil, fmt.Errorf("list profesor materias: %w", err)
	}

	byProfesor := make(map[int64][]models.MateriaAsignada, len(profesores))
	for _, row := range rows {
		byProfesor[row.IDProfesor] = append(byProfesor[row.IDProfesor], models.MateriaAsignada{
			IDMateria:   row.IDMateria,
			Nombre:      row.Nombre,
			Descripcion: row.Descripcion,
		})
	}
	for i := range profesores {
		if materias, ok := byProfesor[profesores[i].IDProfesor]; ok {
			profesores[i].Materias = materias
		} else {
			profesores[i].Materias = []models.MateriaAsignada{}
		}
	}

	return profesores, nil
}

// FindActivoByID fetches an active teacher by ID with its subjects.
func (r *ProfesorRepository) FindActivoByID(ctx context.Context, id int64) (*models.Profesor, error) {
	query := fmt.Sprintf("SELECT %s FROM profesor WHERE id_profesor = $1 AND activo = TRUE", profesorColumns)
	var profesor models.Profesor
	if err := r.db.GetContext(ctx, &profesor, query, id); err != nil {
		return nil, err
	}

	const materiasQuery = `
SELECT pm.id_profesor, m.id_materia, m.nombre, m.descripcion
FROM profesor_materia pm
JOIN materia m ON m.id_materia = pm.id_materia
WHERE pm.id_profesor = $1
ORDER BY m.nombre ASC`
	var rows []profesorMateriaRow
	if err := r.db.SelectContext(ctx, &rows, materiasQuery, id); err != nil {
		return nil, fmt.Errorf("list materias for profesor: %w", err)
	}
	profesor.Materias = make([]models.MateriaAsignada, 0, len(rows))
	for _, row := range rows {
		profesor.Materias = append(profesor.Materias, models.MateriaAsignada{
			IDMateria:   row.IDMateria,
			Nombre:      row.Nombre,
			Descripcion: row.Descripcion,
		})
	}

	return &profesor, nil
}

// ExistsActivoByDNI checks whether another active teacher already holds
// the given national id. Soft-deleted rows do not count.
func (r *ProfesorRepository) ExistsActivoByDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	query := "SELECT 1 FROM profesor WHERE dni = $1 AND activo = TRUE"
	args := []interface{}{dni}
	if excludeID > 0 {
		query += " AND id_profesor <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check profesor dni: %w", err)
	}
	return true, nil
}

// Create inserts a teacher and its subject assignments in one
// transaction so a partial failure leaves no half-created record.
func (r *ProfesorRepository) Create(ctx context.Context, profesor *models.Profesor, materias []int64) error {
	now := time.Now().UTC()
	profesor.CreatedAt = now
	profesor.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create profesor: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertQuery = `
INSERT INTO profesor (nombre, genero, email, direccion, telefono, dni, situacion_revista, activo, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id_profesor`
	if err := tx.GetContext(ctx, &profesor.IDProfesor, insertQuery,
		profesor.Nombre, profesor.Genero, profesor.Email, profesor.Direccion, profesor.Telefono,
		profesor.DNI, profesor.SituacionRevista, profesor.Activo, profesor.CreatedAt, profesor.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert profesor: %w", err)
	}

	if err := insertMaterias(ctx, tx, profesor.IDProfesor, materias); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create profesor: %w", err)
	}
	return nil
}

// Update modifies an existing teacher record.
func (r *ProfesorRepository) Update(ctx context.Context, profesor *models.Profesor) error {
	profesor.UpdatedAt = time.Now().UTC()
	const query = `
UPDATE profesor
SET nombre = :nombre, genero = :genero, email = :email, direccion = :direccion,
    telefono = :telefono, dni = :dni, situacion_revista = :situacion_revista, updated_at = :updated_at
WHERE id_profesor = :id_profesor`
	if _, err := r.db.NamedExecContext(ctx, query, profesor); err != nil {
		return fmt.Errorf("update profesor: %w", err)
	}
	return nil
}

// ReplaceMaterias swaps the full subject assignment set of a teacher.
// Delete and insert run in one transaction, so readers never observe a
// transiently empty set.
func (r *ProfesorRepository) ReplaceMaterias(ctx context.Context, profesorID int64, materias []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace materias: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM profesor_materia WHERE id_profesor = $1`, profesorID); err != nil {
		return fmt.Errorf("clear profesor materias: %w", err)
	}

	if err := insertMaterias(ctx, tx, profesorID, materias); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace materias: %w", err)
	}
	return nil
}

// Desactivar soft-deletes a teacher. Subject assignments are retained
// for history.
func (r *ProfesorRepository) Desactivar(ctx context.Context, id int64) error {
	const query = `UPDATE profesor SET activo = FALSE, updated_at = $2 WHERE id_profesor = $1 AND activo = TRUE`
	result, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("desactivar profesor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check desactivar rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func insertMaterias(ctx context.Context, tx *sqlx.Tx, profesorID int64, materias []int64) error {
	for _, materiaID := range materias {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profesor_materia (id_profesor, id_materia) VALUES ($1, $2)`,
			profesorID, materiaID,
		); err != nil {
			return fmt.Errorf("assign materia %d: %w", materiaID, err)
		}
	}
	return nil
}
