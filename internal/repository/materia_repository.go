package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

// MateriaRepository reads subjects and their parent courses.
type MateriaRepository struct {
	db *sqlx.DB
}

// NewMateriaRepository constructs a MateriaRepository.
func NewMateriaRepository(db *sqlx.DB) *MateriaRepository {
	return &MateriaRepository{db: db}
}

type materiaRow struct {
	IDMateria    int64   `db:"id_materia"`
	Nombre       string  `db:"nombre"`
	Descripcion  *string `db:"descripcion"`
	CargaHoraria *string `db:"carga_horaria"`
	IDCurso      *int64  `db:"id_curso"`
	CursoNombre  *string `db:"curso_nombre"`
	CursoNivel   *string `db:"curso_nivel"`
	CursoAnio    *int    `db:"curso_anio"`
}

// List returns all subjects ordered by name with the parent course
// nested when present.
func (r *MateriaRepository) List(ctx context.Context) ([]models.Materia, error) {
	const query = `
SELECT m.id_materia, m.nombre, m.descripcion, m.carga_horaria, m.id_curso,
       c.nombre AS curso_nombre, c.nivel AS curso_nivel, c.anio AS curso_anio
FROM materia m
LEFT JOIN curso c ON c.id_curso = m.id_curso
ORDER BY m.nombre ASC`
	var rows []materiaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list materias: %w", err)
	}

	materias := make([]models.Materia, 0, len(rows))
	for _, row := range rows {
		materia := models.Materia{
			IDMateria:    row.IDMateria,
			Nombre:       row.Nombre,
			Descripcion:  row.Descripcion,
			CargaHoraria: row.CargaHoraria,
			IDCurso:      row.IDCurso,
		}
		if row.IDCurso != nil && row.CursoNombre != nil {
			curso := &models.Curso{IDCurso: *row.IDCurso, Nombre: *row.CursoNombre}
			if row.CursoNivel != nil {
				curso.Nivel = *row.CursoNivel
			}
			if row.CursoAnio != nil {
				curso.Anio = *row.CursoAnio
			}
			materia.Curso = curso
		}
		materias = append(materias, materia)
	}

	return materias, nil
}

// ListCursos returns every course ordered by name.
func (r *MateriaRepository) ListCursos(ctx context.Context) ([]models.Curso, error) {
	const query = `SELECT id_curso, nombre, nivel, anio FROM curso ORDER BY nombre ASC`
	var cursos []models.Curso
	if err := r.db.SelectContext(ctx, &cursos, query); err != nil {
		return nil, fmt.Errorf("list cursos: %w", err)
	}
	return cursos, nil
}
