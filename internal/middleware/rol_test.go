package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/gestion-escolar/escuela-api/internal/models"
	"github.com/gestion-escolar/escuela-api/internal/service"
)

type fakeRolStore struct {
	roles map[string]models.Rol
	err   error
}

func (f *fakeRolStore) FindByUserID(ctx context.Context, userID string) (models.Rol, error) {
	if f.err != nil {
		return "", f.err
	}
	if rol, ok := f.roles[userID]; ok {
		return rol, nil
	}
	return "", sql.ErrNoRows
}

func setupRolRouter(store *fakeRolStore, allowed ...models.Rol) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rolService := service.NewRolService(store, nil, 0, nil, nil)

	r := gin.New()
	r.GET("/protegido",
		func(c *gin.Context) {
			c.Set(ContextUserKey, &models.JWTClaims{
				UserID:           "u1",
				RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
			})
		},
		ResolveRole(rolService),
		RequireRoles(allowed...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	store := &fakeRolStore{roles: map[string]models.Rol{"u1": models.RolProfesor}}
	r := setupRolRouter(store, models.RolAdmin, models.RolProfesor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesDeniesUnlistedRole(t *testing.T) {
	store := &fakeRolStore{roles: map[string]models.Rol{"u1": models.RolPreceptor}}
	r := setupRolRouter(store, models.RolAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResolveRoleDefaultsMissingAssignmentToUsuario(t *testing.T) {
	store := &fakeRolStore{}
	r := setupRolRouter(store, models.RolUsuario)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveRoleFailsClosedOnStoreError(t *testing.T) {
	store := &fakeRolStore{err: errors.New("connection refused")}
	r := setupRolRouter(store, models.RolAdmin, models.RolProfesor, models.RolPreceptor, models.RolUsuario)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
