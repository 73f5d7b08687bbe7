package models

// DiasSemana is the fixed set of weekdays a slot may occupy.
var DiasSemana = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

// EsDiaValido reports whether day belongs to the weekday set.
func EsDiaValido(day string) bool {
	for _, d := range DiasSemana {
		if d == day {
			return true
		}
	}
	return false
}

// Horario is a schedule slot belonging to a course. Times are stored
// as HH:MM strings; there is no overlap validation.
type Horario struct {
	IDHorario  int64  `db:"id_horario" json:"id_horario"`
	DiaSemana  string `db:"dia_semana" json:"dia_semana"`
	HoraInicio string `db:"hora_inicio" json:"hora_inicio"`
	HoraFin    string `db:"hora_fin" json:"hora_fin"`
	IDCurso    int64  `db:"id_curso" json:"id_curso"`

	Curso *Curso `db:"-" json:"curso,omitempty"`
}
