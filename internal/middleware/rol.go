package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/models"
	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// ContextRolKey is the gin context key storing the resolved role for
// the current request.
const ContextRolKey = "currentRol"

// ResolveRole resolves the authenticated user's role from the role
// store and attaches it to the request context. Resolution is fail
// closed: when the store cannot be consulted the request is rejected
// instead of proceeding with a guessed role.
func ResolveRole(rolService *service.RolService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		rol, err := rolService.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextRolKey, rol)
		c.Next()
	}
}

// RequireRoles allows the request through only when the resolved role
// is in the allow list.
func RequireRoles(allowed ...models.Rol) gin.HandlerFunc {
	allowedRoles := make(map[models.Rol]struct{}, len(allowed))
	for _, rol := range allowed {
		allowedRoles[rol] = struct{}{}
	}

	return func(c *gin.Context) {
		rolValue, exists := c.Get(ContextRolKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		rol := rolValue.(models.Rol)

		if _, ok := allowedRoles[rol]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Acceso denegado"))
			c.Abort()
			return
		}

		c.Next()
	}
}
