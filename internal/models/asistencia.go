package models

// AsistenciaProfesor is one persisted attendance row: on a given date,
// whether a teacher was present for one of their assigned subjects.
type AsistenciaProfesor struct {
	IDAsistencia int64  `db:"id_asistencia" json:"id_asistencia"`
	Fecha        string `db:"fecha" json:"fecha"`
	IDProfesor   int64  `db:"id_profesor" json:"id_profesor"`
	IDMateria    int64  `db:"id_materia" json:"id_materia"`
	Presente     bool   `db:"presente" json:"presente"`
	Observacion  string `db:"observacion" json:"observacion"`
}

// ParAsignacion is one teacher-subject pair derived from the current
// assignments of active teachers; it seeds the default attendance set
// for a date.
type ParAsignacion struct {
	IDProfesor     int64  `db:"id_profesor" json:"id_profesor"`
	ProfesorNombre string `db:"profesor_nombre" json:"profesor_nombre"`
	IDMateria      int64  `db:"id_materia" json:"id_materia"`
	MateriaNombre  string `db:"materia_nombre" json:"materia_nombre"`
}

// RegistroAsistencia is the editable day-view record: the expected
// pair defaulted to present, overridden by any saved row.
type RegistroAsistencia struct {
	IDProfesor     int64  `json:"id_profesor"`
	ProfesorNombre string `json:"profesor_nombre"`
	IDMateria      int64  `json:"id_materia"`
	MateriaNombre  string `json:"materia_nombre"`
	Presente       bool   `json:"presente"`
	Observacion    string `json:"observacion"`
}
