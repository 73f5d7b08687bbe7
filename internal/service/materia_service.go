package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type materiaRepository interface {
	List(ctx context.Context) ([]models.Materia, error)
	ListCursos(ctx context.Context) ([]models.Curso, error)
}

// MateriaService exposes the subject and course catalog.
type MateriaService struct {
	repo   materiaRepository
	logger *zap.Logger
}

// NewMateriaService constructs a MateriaService.
func NewMateriaService(repo materiaRepository, logger *zap.Logger) *MateriaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MateriaService{repo: repo, logger: logger}
}

// List returns every subject with its course, ordered by name.
func (s *MateriaService) List(ctx context.Context) ([]models.Materia, error) {
	materias, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar las materias")
	}
	return materias, nil
}

// ListCursos returns the course catalog.
func (s *MateriaService) ListCursos(ctx context.Context) ([]models.Curso, error) {
	cursos, err := s.repo.ListCursos(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los cursos")
	}
	return cursos, nil
}
