package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-escolar/escuela-api/internal/models"
	"github.com/gestion-escolar/escuela-api/internal/service"
)

type stubAsistenciaRepo struct {
	pares    []models.ParAsignacion
	porFecha map[string][]models.AsistenciaProfesor
}

func (s *stubAsistenciaRepo) ListParesActivos(ctx context.Context) ([]models.ParAsignacion, error) {
	return s.pares, nil
}

func (s *stubAsistenciaRepo) ListByFecha(ctx context.Context, fecha string) ([]models.AsistenciaProfesor, error) {
	return s.porFecha[fecha], nil
}

func (s *stubAsistenciaRepo) ReplaceForFecha(ctx context.Context, fecha string, registros []models.AsistenciaProfesor) error {
	if s.porFecha == nil {
		s.porFecha = make(map[string][]models.AsistenciaProfesor)
	}
	s.porFecha[fecha] = registros
	return nil
}

func setupAsistenciaRouter(repo *stubAsistenciaRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAsistenciaHandler(service.NewAsistenciaService(repo, nil, nil))
	r := gin.New()
	r.GET("/asistencias", h.Dia)
	r.PUT("/asistencias", h.Guardar)
	return r
}

func TestAsistenciaHandlerDiaRequiresFecha(t *testing.T) {
	r := setupAsistenciaRouter(&stubAsistenciaRepo{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/asistencias", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAsistenciaHandlerGuardarThenDia(t *testing.T) {
	repo := &stubAsistenciaRepo{
		pares: []models.ParAsignacion{
			{IDProfesor: 7, ProfesorNombre: "Ana García", IDMateria: 10, MateriaNombre: "Matemática"},
		},
	}
	r := setupAsistenciaRouter(repo)

	body := bytes.NewBufferString(`{"fecha":"2026-03-10","registros":[{"id_profesor":7,"id_materia":10,"presente":false,"observacion":"enfermo"}]}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/asistencias", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/asistencias?fecha=2026-03-10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var registros []models.RegistroAsistencia
	require.NoError(t, json.Unmarshal(resp.Data, &registros))
	require.Len(t, registros, 1)
	assert.False(t, registros[0].Presente)
	assert.Equal(t, "enfermo", registros[0].Observacion)
}
