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

type mockProfesorRepo struct {
	items    map[int64]*models.Profesor
	dniIndex map[string]int64
	nextID   int64
	materias map[int64][]int64
}

func newMockProfesorRepo() *mockProfesorRepo {
	return &mockProfesorRepo{
		items:    make(map[int64]*models.Profesor),
		dniIndex: make(map[string]int64),
		materias: make(map[int64][]int64),
		nextID:   1,
	}
}

func (m *mockProfesorRepo) ListActivos(ctx context.Context) ([]models.Profesor, error) {
	var out []models.Profesor
	for _, p := range m.items {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProfesorRepo) FindActivoByID(ctx context.Context, id int64) (*models.Profesor, error) {
	if p, ok := m.items[id]; ok && p.Activo {
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockProfesorRepo) ExistsActivoByDNI(ctx context.Context, dni string, excludeID int64) (bool, error) {
	owner, ok := m.dniIndex[dni]
	if !ok {
		return false, nil
	}
	p, exists := m.items[owner]
	if !exists || !p.Activo {
		return false, nil
	}
	if excludeID > 0 && owner == excludeID {
		return false, nil
	}
	return true, nil
}

func (m *mockProfesorRepo) Create(ctx context.Context, profesor *models.Profesor, materias []int64) error {
	profesor.IDProfesor = m.nextID
	m.nextID++
	cp := *profesor
	m.items[profesor.IDProfesor] = &cp
	if profesor.DNI != nil {
		m.dniIndex[*profesor.DNI] = profesor.IDProfesor
	}
	m.materias[profesor.IDProfesor] = materias
	return nil
}

func (m *mockProfesorRepo) Update(ctx context.Context, profesor *models.Profesor) error {
	cp := *profesor
	m.items[profesor.IDProfesor] = &cp
	if profesor.DNI != nil {
		m.dniIndex[*profesor.DNI] = profesor.IDProfesor
	}
	return nil
}

func (m *mockProfesorRepo) ReplaceMaterias(ctx context.Context, profesorID int64, materias []int64) error {
	m.materias[profesorID] = materias
	return nil
}

func (m *mockProfesorRepo) Desactivar(ctx context.Context, id int64) error {
	p, ok := m.items[id]
	if !ok || !p.Activo {
		return sql.ErrNoRows
	}
	p.Activo = false
	return nil
}

func strPtr(s string) *string { return &s }

func TestProfesorServiceCreateDefaultsSituacion(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	profesor, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García",
		Email:  "ana@escuela.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SituacionSuplente, profesor.SituacionRevista)
	assert.True(t, profesor.Activo)
}

func TestProfesorServiceCreateRequiresNombreYEmail(t *testing.T) {
	svc := NewProfesorService(newMockProfesorRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateProfesorRequest{Email: "ana@escuela.edu"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Nombre y email son requeridos", appErr.Message)
}

func TestProfesorServiceCreateRejectsDuplicateDNI(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu", DNI: strPtr("30111222"),
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Benito Ruiz", Email: "benito@escuela.edu", DNI: strPtr("30111222"),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Ya existe un profesor con ese DNI", appErr.Message)
}

func TestProfesorServiceDNIReusableAfterBaja(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	creado, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu", DNI: strPtr("30111222"),
	})
	require.NoError(t, err)

	_, err = svc.Eliminar(context.Background(), creado.IDProfesor)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Benito Ruiz", Email: "benito@escuela.edu", DNI: strPtr("30111222"),
	})
	assert.NoError(t, err)
}

func TestProfesorServiceUpdateExcludesSelfFromDNICheck(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	creado, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu", DNI: strPtr("30111222"),
	})
	require.NoError(t, err)

	actualizado, err := svc.Update(context.Background(), creado.IDProfesor, UpdateProfesorRequest{
		DNI:      strPtr("30111222"),
		Telefono: strPtr("555-0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, actualizado.Telefono)
	assert.Equal(t, "555-0100", *actualizado.Telefono)
}

func TestProfesorServiceUpdateRejectsDNIDeOtro(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu", DNI: strPtr("30111222"),
	})
	require.NoError(t, err)
	otro, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Benito Ruiz", Email: "benito@escuela.edu",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), otro.IDProfesor, UpdateProfesorRequest{DNI: strPtr("30111222")})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Ya existe otro profesor con ese DNI", appErr.Message)
}

func TestProfesorServiceUpdateReplacesMaterias(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	creado, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu", Materias: []int64{10, 11},
	})
	require.NoError(t, err)

	nuevas := []int64{12}
	_, err = svc.Update(context.Background(), creado.IDProfesor, UpdateProfesorRequest{Materias: &nuevas})
	require.NoError(t, err)
	assert.Equal(t, []int64{12}, repo.materias[creado.IDProfesor])
}

func TestProfesorServiceEliminarNotFound(t *testing.T) {
	svc := NewProfesorService(newMockProfesorRepo(), nil, nil)

	_, err := svc.Eliminar(context.Background(), 99)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Profesor no encontrado", appErr.Message)
}

func TestProfesorServiceEliminarReturnsDeactivatedRecord(t *testing.T) {
	repo := newMockProfesorRepo()
	svc := NewProfesorService(repo, nil, nil)

	creado, err := svc.Create(context.Background(), CreateProfesorRequest{
		Nombre: "Ana García", Email: "ana@escuela.edu",
	})
	require.NoError(t, err)

	eliminado, err := svc.Eliminar(context.Background(), creado.IDProfesor)
	require.NoError(t, err)
	assert.False(t, eliminado.Activo)
	assert.Equal(t, creado.IDProfesor, eliminado.IDProfesor)

	_, err = svc.Get(context.Background(), creado.IDProfesor)
	assert.Error(t, err)
}
