package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// ProfesorHandler wires the teacher roster service to HTTP routes.
type ProfesorHandler struct {
	profesores *service.ProfesorService
}

// NewProfesorHandler constructs a new ProfesorHandler.
func NewProfesorHandler(profesores *service.ProfesorService) *ProfesorHandler {
	return &ProfesorHandler{profesores: profesores}
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Identificador inválido")
	}
	return id, nil
}

// List godoc
// @Summary List active teachers
// @Tags Profesores
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profesores [get]
func (h *ProfesorHandler) List(c *gin.Context) {
	profesores, err := h.profesores.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profesores)
}

// Get godoc
// @Summary Get one active teacher
// @Tags Profesores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profesores/{id} [get]
func (h *ProfesorHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	profesor, err := h.profesores.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profesor)
}

// Create godoc
// @Summary Register a teacher
// @Tags Profesores
// @Accept json
// @Produce json
// @Param payload body service.CreateProfesorRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /profesores [post]
func (h *ProfesorHandler) Create(c *gin.Context) {
	var req service.CreateProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Nombre y email son requeridos"))
		return
	}
	profesor, err := h.profesores.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profesor)
}

// Update godoc
// @Summary Update a teacher
// @Tags Profesores
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID"
// @Param payload body service.UpdateProfesorRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profesores/{id} [put]
func (h *ProfesorHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Payload inválido"))
		return
	}
	profesor, err := h.profesores.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profesor)
}

// Delete godoc
// @Summary Deactivate a teacher
// @Tags Profesores
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /profesores/{id} [delete]
func (h *ProfesorHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	profesor, err := h.profesores.Eliminar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profesor)
}
