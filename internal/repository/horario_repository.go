package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gestion-escolar/escuela-api/internal/models"
)

// HorarioRepository manages schedule slots.
type HorarioRepository struct {
	db *sqlx.DB
}

// NewHorarioRepository constructs a HorarioRepository.
func NewHorarioRepository(db *sqlx.DB) *HorarioRepository {
	return &HorarioRepository{db: db}
}

type horarioRow struct {
	IDHorario   int64  `db:"id_horario"`
	DiaSemana   string `db:"dia_semana"`
	HoraInicio  string `db:"hora_inicio"`
	HoraFin     string `db:"hora_fin"`
	IDCurso     int64  `db:"id_curso"`
	CursoNombre string `db:"curso_nombre"`
	CursoNivel  string `db:"curso_nivel"`
	CursoAnio   int    `db:"curso_anio"`
}

// List returns schedule slots with course info, optionally filtered by
// course, ordered by weekday and start time.
func (r *HorarioRepository) List(ctx context.Context, cursoID *int64) ([]models.Horario, error) {
	query := `
SELECT h.id_horario, h.dia_semana,
       to_char(h.hora_inicio, 'HH24:MI') AS hora_inicio,
       to_char(h.hora_fin, 'HH24:MI') AS hora_fin,
       h.id_curso, c.nombre AS curso_nombre, c.nivel AS curso_nivel, c.anio AS curso_anio
FROM horario h
JOIN curso c ON c.id_curso = h.id_curso`
	var args []interface{}
	if cursoID != nil {
		query += " WHERE h.id_curso = $1"
		args = append(args, *cursoID)
	}
	query += " ORDER BY h.dia_semana ASC, h.hora_inicio ASC"

	var rows []horarioRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list horarios: %w", err)
	}

	horarios := make([]models.Horario, 0, len(rows))
	for _, row := range rows {
		horarios = append(horarios, models.Horario{
			IDHorario:  row.IDHorario,
			DiaSemana:  row.DiaSemana,
			HoraInicio: row.HoraInicio,
			HoraFin:    row.HoraFin,
			IDCurso:    row.IDCurso,
			Curso: &models.Curso{
				IDCurso: row.IDCurso,
				Nombre:  row.CursoNombre,
				Nivel:   row.CursoNivel,
				Anio:    row.CursoAnio,
			},
		})
	}

	return horarios, nil
}

// Create inserts a new slot and fills in the generated identifier.
func (r *HorarioRepository) Create(ctx context.Context, horario *models.Horario) error {
	const query = `
INSERT INTO horario (dia_semana, hora_inicio, hora_fin, id_curso)
VALUES ($1, $2::time, $3::time, $4)
RETURNING id_horario`
	if err := r.db.GetContext(ctx, &horario.IDHorario, query,
		horario.DiaSemana, horario.HoraInicio, horario.HoraFin, horario.IDCurso,
	); err != nil {
		return fmt.Errorf("create horario: %w", err)
	}
	return nil
}

// Delete removes a slot by identifier.
func (r *HorarioRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM horario WHERE id_horario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete horario: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted horario rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
