package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// HorarioHandler wires the schedule service to HTTP routes.
type HorarioHandler struct {
	horarios *service.HorarioService
}

// NewHorarioHandler constructs a new HorarioHandler.
func NewHorarioHandler(horarios *service.HorarioService) *HorarioHandler {
	return &HorarioHandler{horarios: horarios}
}

// List godoc
// @Summary List schedule slots
// @Tags Horarios
// @Produce json
// @Param curso query int false "Filter by course ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /horarios [get]
func (h *HorarioHandler) List(c *gin.Context) {
	var cursoID *int64
	if raw := c.Query("curso"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Curso inválido"))
			return
		}
		cursoID = &id
	}

	horarios, err := h.horarios.List(c.Request.Context(), cursoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, horarios)
}

// Create godoc
// @Summary Add a schedule slot
// @Tags Horarios
// @Accept json
// @Produce json
// @Param payload body service.CreateHorarioRequest true "Slot payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /horarios [post]
func (h *HorarioHandler) Create(c *gin.Context) {
	var req service.CreateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Payload inválido"))
		return
	}
	horario, err := h.horarios.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, horario)
}

// Delete godoc
// @Summary Remove a schedule slot
// @Tags Horarios
// @Produce json
// @Param id path int true "Slot ID"
// @Success 204
// @Security BearerAuth
// @Router /horarios/{id} [delete]
func (h *HorarioHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.horarios.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
