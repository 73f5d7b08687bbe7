package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type mockHorarioRepo struct {
	items  map[int64]models.Horario
	nextID int64
}

func newMockHorarioRepo() *mockHorarioRepo {
	return &mockHorarioRepo{items: make(map[int64]models.Horario), nextID: 1}
}

func (m *mockHorarioRepo) List(ctx context.Context, cursoID *int64) ([]models.Horario, error) {
	var out []models.Horario
	for _, h := range m.items {
		if cursoID == nil || h.IDCurso == *cursoID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockHorarioRepo) Create(ctx context.Context, horario *models.Horario) error {
	horario.IDHorario = m.nextID
	m.nextID++
	m.items[horario.IDHorario] = *horario
	return nil
}

func (m *mockHorarioRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func TestHorarioServiceCreate(t *testing.T) {
	svc := NewHorarioService(newMockHorarioRepo(), nil, nil)

	horario, err := svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Lunes", HoraInicio: "08:00", HoraFin: "09:00", IDCurso: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), horario.IDHorario)
}

func TestHorarioServiceCreateRejectsBadDay(t *testing.T) {
	svc := NewHorarioService(newMockHorarioRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Domingo", HoraInicio: "08:00", HoraFin: "09:00", IDCurso: 3,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Día inválido", appErr.Message)
}

func TestHorarioServiceCreateRejectsBadTime(t *testing.T) {
	svc := NewHorarioService(newMockHorarioRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Lunes", HoraInicio: "8am", HoraFin: "09:00", IDCurso: 3,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Hora inválida (formato HH:MM)", appErr.Message)
}

func TestHorarioServiceCreateRejectsInvertedRange(t *testing.T) {
	svc := NewHorarioService(newMockHorarioRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Lunes", HoraInicio: "10:00", HoraFin: "09:00", IDCurso: 3,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
}

func TestHorarioServiceDeleteNotFound(t *testing.T) {
	svc := NewHorarioService(newMockHorarioRepo(), nil, nil)

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Horario no encontrado", appErr.Message)
}

func TestHorarioServiceListFiltersByCurso(t *testing.T) {
	repo := newMockHorarioRepo()
	svc := NewHorarioService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Lunes", HoraInicio: "08:00", HoraFin: "09:00", IDCurso: 3,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateHorarioRequest{
		DiaSemana: "Martes", HoraInicio: "08:00", HoraFin: "09:00", IDCurso: 4,
	})
	require.NoError(t, err)

	cursoID := int64(3)
	horarios, err := svc.List(context.Background(), &cursoID)
	require.NoError(t, err)
	require.Len(t, horarios, 1)
	assert.Equal(t, "Lunes", horarios[0].DiaSemana)
}
