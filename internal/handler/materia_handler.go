package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// MateriaHandler exposes the subject and course catalog.
type MateriaHandler struct {
	materias *service.MateriaService
}

// NewMateriaHandler constructs a new MateriaHandler.
func NewMateriaHandler(materias *service.MateriaService) *MateriaHandler {
	return &MateriaHandler{materias: materias}
}

// List godoc
// @Summary List subjects with their course
// @Tags Materias
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /materias [get]
func (h *MateriaHandler) List(c *gin.Context) {
	materias, err := h.materias.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, materias)
}

// ListCursos godoc
// @Summary List courses
// @Tags Materias
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /cursos [get]
func (h *MateriaHandler) ListCursos(c *gin.Context) {
	cursos, err := h.materias.ListCursos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cursos)
}
