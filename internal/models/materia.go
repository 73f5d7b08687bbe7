package models

// Curso is a course grouping subjects and schedule slots.
type Curso struct {
	IDCurso int64  `db:"id_curso" json:"id_curso"`
	Nombre  string `db:"nombre" json:"nombre"`
	Nivel   string `db:"nivel" json:"nivel"`
	Anio    int    `db:"anio" json:"anio"`
}

// Materia is a subject taught within a course.
type Materia struct {
	IDMateria    int64   `db:"id_materia" json:"id_materia"`
	Nombre       string  `db:"nombre" json:"nombre"`
	Descripcion  *string `db:"descripcion" json:"descripcion,omitempty"`
	CargaHoraria *string `db:"carga_horaria" json:"carga_horaria,omitempty"`
	IDCurso      *int64  `db:"id_curso" json:"id_curso,omitempty"`

	Curso *Curso `db:"-" json:"curso,omitempty"`
}
