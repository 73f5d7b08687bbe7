package handler

import (
	"bytes"
	"context"
	"database/sql"
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

type stubUsuarioRepo struct {
	users   []models.User
	mirrors map[string]models.Rol
}

func (s *stubUsuarioRepo) List(ctx context.Context) ([]models.User, error) {
	return s.users, nil
}

func (s *stubUsuarioRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubUsuarioRepo) UpdateRoleMirror(ctx context.Context, id string, rol models.Rol) error {
	if s.mirrors == nil {
		s.mirrors = make(map[string]models.Rol)
	}
	s.mirrors[id] = rol
	return nil
}

type stubRolAssignments struct {
	asignaciones map[string]models.Rol
}

func (s *stubRolAssignments) Upsert(ctx context.Context, userID string, rol models.Rol) error {
	if s.asignaciones == nil {
		s.asignaciones = make(map[string]models.Rol)
	}
	s.asignaciones[userID] = rol
	return nil
}

func (s *stubRolAssignments) ListAll(ctx context.Context) ([]models.AsignacionRol, error) {
	var out []models.AsignacionRol
	for id, rol := range s.asignaciones {
		out = append(out, models.AsignacionRol{UserID: id, Rol: rol})
	}
	return out, nil
}

func setupAdminRouter(users *stubUsuarioRepo, roles *stubRolAssignments) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminUserHandler(service.NewUsuarioService(users, roles, nil, nil))
	r := gin.New()
	r.GET("/admin/users", h.List)
	r.PUT("/admin/users", h.UpdateRol)
	return r
}

func TestAdminUserHandlerListDefaultsRole(t *testing.T) {
	users := &stubUsuarioRepo{users: []models.User{{ID: "u1", Email: "nuevo@escuela.edu"}}}
	r := setupAdminRouter(users, &stubRolAssignments{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var listado []models.UsuarioConRol
	require.NoError(t, json.Unmarshal(resp.Data, &listado))
	require.Len(t, listado, 1)
	assert.Equal(t, models.RolUsuario, listado[0].Rol)
}

func TestAdminUserHandlerUpdateRol(t *testing.T) {
	users := &stubUsuarioRepo{users: []models.User{{ID: "u1", Email: "a@escuela.edu"}}}
	roles := &stubRolAssignments{}
	r := setupAdminRouter(users, roles)

	body := bytes.NewBufferString(`{"userId":"u1","role":"preceptor"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RolPreceptor, roles.asignaciones["u1"])
}

func TestAdminUserHandlerUpdateRolMissingParams(t *testing.T) {
	r := setupAdminRouter(&stubUsuarioRepo{}, &stubRolAssignments{})

	body := bytes.NewBufferString(`{"userId":"u1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Missing userId or role", resp.Error.Message)
}

func TestAdminUserHandlerUpdateRolInvalidRole(t *testing.T) {
	users := &stubUsuarioRepo{users: []models.User{{ID: "u1"}}}
	r := setupAdminRouter(users, &stubRolAssignments{})

	body := bytes.NewBufferString(`{"userId":"u1","role":"superadmin"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Rol inválido", resp.Error.Message)
}
