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

type horarioRepository interface {
	List(ctx context.Context, cursoID *int64) ([]models.Horario, error)
	Create(ctx context.Context, horario *models.Horario) error
	Delete(ctx context.Context, id int64) error
}

// CreateHorarioRequest is the payload for adding a schedule slot.
type CreateHorarioRequest struct {
	DiaSemana  string `json:"dia_semana" validate:"required"`
	HoraInicio string `json:"hora_inicio" validate:"required"`
	HoraFin    string `json:"hora_fin" validate:"required"`
	IDCurso    int64  `json:"id_curso" validate:"required,gt=0"`
}

// HorarioService manages weekly schedule slots.
type HorarioService struct {
	repo      horarioRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHorarioService constructs a HorarioService.
func NewHorarioService(repo horarioRepository, validate *validator.Validate, logger *zap.Logger) *HorarioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &HorarioService{repo: repo, validator: validate, logger: logger}
}

// List returns schedule slots, optionally scoped to one course.
func (s *HorarioService) List(ctx context.Context, cursoID *int64) ([]models.Horario, error) {
	horarios, err := s.repo.List(ctx, cursoID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los horarios")
	}
	return horarios, nil
}

// Create validates and stores a new slot.
func (s *HorarioService) Create(ctx context.Context, req CreateHorarioRequest) (*models.Horario, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Día, horas y curso son requeridos")
	}

	if !models.EsDiaValido(req.DiaSemana) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Día inválido")
	}

	inicio, err := time.Parse("15:04", req.HoraInicio)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Hora inválida (formato HH:MM)")
	}
	fin, err := time.Parse("15:04", req.HoraFin)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Hora inválida (formato HH:MM)")
	}
	if !fin.After(inicio) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "La hora de fin debe ser posterior a la de inicio")
	}

	horario := &models.Horario{
		DiaSemana:  req.DiaSemana,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		IDCurso:    req.IDCurso,
	}
	if err := s.repo.Create(ctx, horario); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el horario")
	}

	return horario, nil
}

// Delete removes a slot by identifier.
func (s *HorarioService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Horario no encontrado")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo eliminar el horario")
	}
	return nil
}
