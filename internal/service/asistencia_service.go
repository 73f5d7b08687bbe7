package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type asistenciaRepository interface {
	ListParesActivos(ctx context.Context) ([]models.ParAsignacion, error)
	ListByFecha(ctx context.Context, fecha string) ([]models.AsistenciaProfesor, error)
	ReplaceForFecha(ctx context.Context, fecha string, registros []models.AsistenciaProfesor) error
}

// RegistroAsistenciaInput is one attendance entry in a save request.
type RegistroAsistenciaInput struct {
	IDProfesor  int64  `json:"id_profesor" validate:"required,gt=0"`
	IDMateria   int64  `json:"id_materia" validate:"required,gt=0"`
	Presente    bool   `json:"presente"`
	Observacion string `json:"observacion"`
}

// GuardarAsistenciaRequest replaces the full attendance set for a date.
type GuardarAsistenciaRequest struct {
	Fecha     string                    `json:"fecha" validate:"required"`
	Registros []RegistroAsistenciaInput `json:"registros" validate:"dive"`
}

// AsistenciaService builds the day view and persists attendance.
type AsistenciaService struct {
	repo      asistenciaRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAsistenciaService constructs an AsistenciaService.
func NewAsistenciaService(repo asistenciaRepository, validate *validator.Validate, logger *zap.Logger) *AsistenciaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AsistenciaService{repo: repo, validator: validate, logger: logger}
}

type parClave struct {
	idProfesor int64
	idMateria  int64
}

// Dia returns the editable attendance view for a date: every current
// teacher-subject pair defaulted to present, overridden by whatever
// was saved for that date.
func (s *AsistenciaService) Dia(ctx context.Context, fecha string) ([]models.RegistroAsistencia, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Fecha inválida")
	}

	pares, err := s.repo.ListParesActivos(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron consultar las asignaciones")
	}

	guardadas, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron consultar las asistencias")
	}

	overrides := make(map[parClave]models.AsistenciaProfesor, len(guardadas))
	for _, registro := range guardadas {
		overrides[parClave{registro.IDProfesor, registro.IDMateria}] = registro
	}

	registros := make([]models.RegistroAsistencia, 0, len(pares))
	for _, par := range pares {
		registro := models.RegistroAsistencia{
			IDProfesor:     par.IDProfesor,
			ProfesorNombre: par.ProfesorNombre,
			IDMateria:      par.IDMateria,
			MateriaNombre:  par.MateriaNombre,
			Presente:       true,
		}
		if guardada, ok := overrides[parClave{par.IDProfesor, par.IDMateria}]; ok {
			registro.Presente = guardada.Presente
			registro.Observacion = guardada.Observacion
		}
		registros = append(registros, registro)
	}

	return registros, nil
}

// Guardar replaces the stored attendance set for a date with the
// submitted one.
func (s *AsistenciaService) Guardar(ctx context.Context, req GuardarAsistenciaRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Registros inválidos")
	}
	if _, err := time.Parse("2006-01-02", req.Fecha); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Fecha inválida")
	}

	registros := make([]models.AsistenciaProfesor, 0, len(req.Registros))
	for _, entrada := range req.Registros {
		registros = append(registros, models.AsistenciaProfesor{
			Fecha:       req.Fecha,
			IDProfesor:  entrada.IDProfesor,
			IDMateria:   entrada.IDMateria,
			Presente:    entrada.Presente,
			Observacion: entrada.Observacion,
		})
	}

	if err := s.repo.ReplaceForFecha(ctx, req.Fecha, registros); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron guardar las asistencias")
	}
	return nil
}
