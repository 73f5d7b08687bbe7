package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// AsistenciaHandler wires the attendance service to HTTP routes.
type AsistenciaHandler struct {
	asistencias *service.AsistenciaService
}

// NewAsistenciaHandler constructs a new AsistenciaHandler.
func NewAsistenciaHandler(asistencias *service.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{asistencias: asistencias}
}

// Dia godoc
// @Summary Attendance day view
// @Tags Asistencias
// @Produce json
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /asistencias [get]
func (h *AsistenciaHandler) Dia(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha es requerida"))
		return
	}

	registros, err := h.asistencias.Dia(c.Request.Context(), fecha)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, registros)
}

// Guardar godoc
// @Summary Replace the attendance set for a date
// @Tags Asistencias
// @Accept json
// @Produce json
// @Param payload body service.GuardarAsistenciaRequest true "Attendance set"
// @Success 204
// @Security BearerAuth
// @Router /asistencias [put]
func (h *AsistenciaHandler) Guardar(c *gin.Context) {
	var req service.GuardarAsistenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Payload inválido"))
		return
	}
	// The date may come as ?fecha=... with only the record set in the body.
	if fecha := c.Query("fecha"); fecha != "" {
		req.Fecha = fecha
	}
	if err := h.asistencias.Guardar(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
