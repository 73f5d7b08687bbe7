package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// AdminUserHandler exposes the admin user-role console.
type AdminUserHandler struct {
	usuarios *service.UsuarioService
}

// NewAdminUserHandler constructs a new AdminUserHandler.
func NewAdminUserHandler(usuarios *service.UsuarioService) *AdminUserHandler {
	return &AdminUserHandler{usuarios: usuarios}
}

// List godoc
// @Summary List users with their roles
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	usuarios, err := h.usuarios.ListConRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, usuarios)
}

type updateRolRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// UpdateRol godoc
// @Summary Assign a role to a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body updateRolRequest true "Assignment"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/users [put]
func (h *AdminUserHandler) UpdateRol(c *gin.Context) {
	var req updateRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing userId or role"))
		return
	}
	if err := h.usuarios.ActualizarRol(c.Request.Context(), req.UserID, req.Role); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
