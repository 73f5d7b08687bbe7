package models

// Rol is the closed set of privilege tiers recognised by the system.
type Rol string

const (
	RolAdmin     Rol = "admin"
	RolProfesor  Rol = "profesor"
	RolPreceptor Rol = "preceptor"
	// RolUsuario is the unprivileged default applied when a user has no
	// row in the role store.
	RolUsuario Rol = "usuario"
)

// Roles lists every assignable role.
var Roles = []Rol{RolAdmin, RolProfesor, RolPreceptor, RolUsuario}

// Valido reports whether the role is one of the known tiers.
func (r Rol) Valido() bool {
	switch r {
	case RolAdmin, RolProfesor, RolPreceptor, RolUsuario:
		return true
	}
	return false
}

// ParseRol maps a stored string onto the closed role set. Unknown
// values degrade to the unprivileged default rather than failing.
func ParseRol(raw string) Rol {
	r := Rol(raw)
	if r.Valido() {
		return r
	}
	return RolUsuario
}

// AsignacionRol is one row of the role store: a user identifier bound
// to a single role. At most one row exists per user.
type AsignacionRol struct {
	UserID string `db:"id" json:"id"`
	Rol    Rol    `db:"role" json:"role"`
}
