package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type usuarioRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateRoleMirror(ctx context.Context, id string, rol models.Rol) error
}

type rolAssignmentStore interface {
	Upsert(ctx context.Context, userID string, rol models.Rol) error
	ListAll(ctx context.Context) ([]models.AsignacionRol, error)
}

type rolCacheInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// UsuarioService implements the admin user-role console use cases.
type UsuarioService struct {
	users  usuarioRepository
	roles  rolAssignmentStore
	cache  rolCacheInvalidator
	logger *zap.Logger
}

// NewUsuarioService constructs a UsuarioService. cache may be nil.
func NewUsuarioService(users usuarioRepository, roles rolAssignmentStore, cache rolCacheInvalidator, logger *zap.Logger) *UsuarioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UsuarioService{users: users, roles: roles, cache: cache, logger: logger}
}

// ListConRoles merges every identity user with its role-store
// assignment, defaulting to the unprivileged tier.
func (s *UsuarioService) ListConRoles(ctx context.Context) ([]models.UsuarioConRol, error) {
	usuarios, err := s.users.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los usuarios")
	}

	asignaciones, err := s.roles.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron consultar los roles")
	}

	rolesPorUsuario := make(map[string]models.Rol, len(asignaciones))
	for _, asignacion := range asignaciones {
		rolesPorUsuario[asignacion.UserID] = asignacion.Rol
	}

	resultado := make([]models.UsuarioConRol, 0, len(usuarios))
	for _, usuario := range usuarios {
		rol, ok := rolesPorUsuario[usuario.ID]
		if !ok {
			rol = models.RolUsuario
		}
		nombre := usuario.Nombre
		if nombre == "" {
			nombre = "Sin nombre"
		}
		resultado = append(resultado, models.UsuarioConRol{
			ID:        usuario.ID,
			Email:     usuario.Email,
			Nombre:    nombre,
			Rol:       rol,
			CreatedAt: usuario.CreatedAt,
			LastLogin: usuario.LastLogin,
		})
	}

	return resultado, nil
}

// ActualizarRol writes a user's role assignment. Unknown role names
// are rejected rather than coerced to the default tier.
func (s *UsuarioService) ActualizarRol(ctx context.Context, userID, rawRol string) error {
	if userID == "" || rawRol == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Missing userId or role")
	}

	rol := models.Rol(rawRol)
	if !rol.Valido() {
		return appErrors.Clone(appErrors.ErrValidation, "Rol inválido")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Usuario no encontrado")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo consultar el usuario")
	}

	if err := s.roles.Upsert(ctx, userID, rol); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el rol")
	}

	if err := s.users.UpdateRoleMirror(ctx, userID, rol); err != nil {
		s.logger.Warn("failed to mirror role onto user record", zap.String("user_id", userID), zap.Error(err))
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}

	return nil
}
