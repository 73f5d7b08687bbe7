package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type profesorRepository interface {
	ListActivos(ctx context.Context) ([]models.Profesor, error)
	FindActivoByID(ctx context.Context, id int64) (*models.Profesor, error)
	ExistsActivoByDNI(ctx context.Context, dni string, excludeID int64) (bool, error)
	Create(ctx context.Context, profesor *models.Profesor, materias []int64) error
	Update(ctx context.Context, profesor *models.Profesor) error
	ReplaceMaterias(ctx context.Context, profesorID int64, materias []int64) error
	Desactivar(ctx context.Context, id int64) error
}

// CreateProfesorRequest is the payload for registering a teacher.
type CreateProfesorRequest struct {
	Nombre           string  `json:"nombre" validate:"required"`
	Genero           *string `json:"genero"`
	Email            string  `json:"email" validate:"required,email"`
	Direccion        *string `json:"direccion"`
	Telefono         *string `json:"telefono"`
	DNI              *string `json:"dni"`
	SituacionRevista *string `json:"situacion_revista"`
	Materias         []int64 `json:"materias"`
}

// UpdateProfesorRequest carries partial teacher updates. Nil fields
// keep their stored value; a non-nil Materias replaces the full
// assignment set.
type UpdateProfesorRequest struct {
	Nombre           *string  `json:"nombre"`
	Genero           *string  `json:"genero"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Direccion        *string  `json:"direccion"`
	Telefono         *string  `json:"telefono"`
	DNI              *string  `json:"dni"`
	SituacionRevista *string  `json:"situacion_revista"`
	Materias         *[]int64 `json:"materias"`
}

// ProfesorService implements the teacher roster use cases.
type ProfesorService struct {
	repo      profesorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfesorService constructs a ProfesorService.
func NewProfesorService(repo profesorRepository, validate *validator.Validate, logger *zap.Logger) *ProfesorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfesorService{repo: repo, validator: validate, logger: logger}
}

// List returns every active teacher with assigned subjects.
func (s *ProfesorService) List(ctx context.Context) ([]models.Profesor, error) {
	profesores, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los profesores")
	}
	return profesores, nil
}

// Get returns one active teacher by identifier.
func (s *ProfesorService) Get(ctx context.Context, id int64) (*models.Profesor, error) {
	profesor, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Profesor no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo consultar el profesor")
	}
	return profesor, nil
}

// Create registers a teacher and its subject assignments. A DNI held
// by another active teacher is rejected; one held only by deactivated
// rows may be reused.
func (s *ProfesorService) Create(ctx context.Context, req CreateProfesorRequest) (*models.Profesor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Nombre y email son requeridos")
	}

	situacion := models.SituacionSuplente
	if req.SituacionRevista != nil && *req.SituacionRevista != "" {
		situacion = models.SituacionRevista(*req.SituacionRevista)
		if !situacion.Valida() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Situación de revista inválida")
		}
	}

	if req.DNI != nil && *req.DNI != "" {
		taken, err := s.repo.ExistsActivoByDNI(ctx, *req.DNI, 0)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar el DNI")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Ya existe un profesor con ese DNI")
		}
	}

	now := time.Now().UTC()
	profesor := &models.Profesor{
		Nombre:           req.Nombre,
		Genero:           req.Genero,
		Email:            req.Email,
		Direccion:        req.Direccion,
		Telefono:         req.Telefono,
		DNI:              req.DNI,
		SituacionRevista: situacion,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, profesor, req.Materias); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el profesor")
	}

	created, err := s.repo.FindActivoByID(ctx, profesor.IDProfesor)
	if err != nil {
		s.logger.Warn("failed to reload created profesor", zap.Int64("id_profesor", profesor.IDProfesor), zap.Error(err))
		return profesor, nil
	}
	return created, nil
}

// Update applies a partial update and, when requested, replaces the
// subject assignment set.
func (s *ProfesorService) Update(ctx context.Context, id int64, req UpdateProfesorRequest) (*models.Profesor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Email inválido")
	}

	profesor, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Profesor no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo consultar el profesor")
	}

	if req.DNI != nil && *req.DNI != "" {
		taken, err := s.repo.ExistsActivoByDNI(ctx, *req.DNI, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo verificar el DNI")
		}
		if taken {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Ya existe otro profesor con ese DNI")
		}
	}

	if req.Nombre != nil {
		profesor.Nombre = *req.Nombre
	}
	if req.Genero != nil {
		profesor.Genero = req.Genero
	}
	if req.Email != nil {
		profesor.Email = *req.Email
	}
	if req.Direccion != nil {
		profesor.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		profesor.Telefono = req.Telefono
	}
	if req.DNI != nil {
		profesor.DNI = req.DNI
	}
	if req.SituacionRevista != nil && *req.SituacionRevista != "" {
		situacion := models.SituacionRevista(*req.SituacionRevista)
		if !situacion.Valida() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Situación de revista inválida")
		}
		profesor.SituacionRevista = situacion
	}
	profesor.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, profesor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar el profesor")
	}

	if req.Materias != nil {
		if err := s.repo.ReplaceMaterias(ctx, id, *req.Materias); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron actualizar las materias")
		}
	}

	updated, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		s.logger.Warn("failed to reload updated profesor", zap.Int64("id_profesor", id), zap.Error(err))
		return profesor, nil
	}
	return updated, nil
}

// Eliminar soft-deletes a teacher and returns the deactivated record.
func (s *ProfesorService) Eliminar(ctx context.Context, id int64) (*models.Profesor, error) {
	profesor, err := s.repo.FindActivoByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Profesor no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo consultar el profesor")
	}

	if err := s.repo.Desactivar(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Profesor no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo dar de baja el profesor")
	}

	profesor.Activo = false
	profesor.UpdatedAt = time.Now().UTC()
	return profesor, nil
}
