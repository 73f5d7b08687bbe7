package models

import "time"

// SituacionRevista is the employment status of a teacher.
type SituacionRevista string

const (
	SituacionTitular     SituacionRevista = "Titular"
	SituacionProvisional SituacionRevista = "Provisional"
	SituacionSuplente    SituacionRevista = "Suplente"
)

// Valida reports whether the employment status is a known value.
func (s SituacionRevista) Valida() bool {
	switch s {
	case SituacionTitular, SituacionProvisional, SituacionSuplente:
		return true
	}
	return false
}

// Profesor represents a teacher record. Rows are soft-deleted: Activo
// flips to false and the row is retained for history.
type Profesor struct {
	IDProfesor       int64            `db:"id_profesor" json:"id_profesor"`
	Nombre           string           `db:"nombre" json:"nombre"`
	Genero           *string          `db:"genero" json:"genero,omitempty"`
	Email            string           `db:"email" json:"email"`
	Direccion        *string          `db:"direccion" json:"direccion,omitempty"`
	Telefono         *string          `db:"telefono" json:"telefono,omitempty"`
	DNI              *string          `db:"dni" json:"dni,omitempty"`
	SituacionRevista SituacionRevista `db:"situacion_revista" json:"situacion_revista"`
	Activo           bool             `db:"activo" json:"activo"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`

	Materias []MateriaAsignada `db:"-" json:"materias"`
}

// MateriaAsignada is a subject linked to a teacher through the
// profesor_materia join table.
type MateriaAsignada struct {
	IDMateria   int64   `db:"id_materia" json:"id_materia"`
	Nombre      string  `db:"nombre" json:"nombre"`
	Descripcion *string `db:"descripcion" json:"descripcion,omitempty"`
}
