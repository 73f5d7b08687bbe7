package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/middleware"
	"github.com/gestion-escolar/escuela-api/internal/models"
	"github.com/gestion-escolar/escuela-api/internal/service"
)

// Handlers groups every HTTP handler for route registration.
type Handlers struct {
	Auth       *AuthHandler
	Profesores *ProfesorHandler
	Materias   *MateriaHandler
	Horarios   *HorarioHandler
	Asistencia *AsistenciaHandler
	AdminUsers *AdminUserHandler
	Exports    *ExportHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes wires the API surface under prefix. Every protected
// route goes through the same chain: token validation, a fresh role
// resolution against the role store, then the route's allow list.
func RegisterRoutes(r *gin.Engine, prefix string, auth *service.AuthService, roles *service.RolService, h Handlers, exportsEnabled bool) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/role", h.Auth.Role)

	authed := api.Group("")
	authed.Use(middleware.JWT(auth))
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/me", h.Auth.Me)

	secured := authed.Group("")
	secured.Use(middleware.ResolveRole(roles))

	lectura := middleware.RequireRoles(models.RolAdmin, models.RolProfesor, models.RolPreceptor)
	escritura := middleware.RequireRoles(models.RolAdmin, models.RolProfesor)
	soloAdmin := middleware.RequireRoles(models.RolAdmin)

	secured.GET("/profesores", lectura, h.Profesores.List)
	secured.GET("/profesores/:id", lectura, h.Profesores.Get)
	secured.POST("/profesores", escritura, h.Profesores.Create)
	secured.PUT("/profesores/:id", escritura, h.Profesores.Update)
	secured.DELETE("/profesores/:id", escritura, h.Profesores.Delete)

	secured.GET("/materias", lectura, h.Materias.List)
	secured.GET("/cursos", lectura, h.Materias.ListCursos)

	secured.GET("/horarios", lectura, h.Horarios.List)
	secured.POST("/horarios", escritura, h.Horarios.Create)
	secured.DELETE("/horarios/:id", escritura, h.Horarios.Delete)

	secured.GET("/asistencias", lectura, h.Asistencia.Dia)
	secured.PUT("/asistencias", escritura, h.Asistencia.Guardar)

	secured.GET("/admin/users", soloAdmin, h.AdminUsers.List)
	secured.PUT("/admin/users", soloAdmin, h.AdminUsers.UpdateRol)

	if exportsEnabled {
		secured.GET("/exports/profesores", escritura, h.Exports.Roster)
		secured.GET("/exports/asistencias", escritura, h.Exports.Asistencia)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "ruta no encontrada"}})
	})
}
