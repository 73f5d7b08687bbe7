package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gestion-escolar/escuela-api/internal/service"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/response"
)

// ExportHandler serves roster and attendance downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs a new ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func serveFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(200, file.ContentType, file.Content)
}

// Roster godoc
// @Summary Export the active teacher roster
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf (default csv)"
// @Success 200
// @Security BearerAuth
// @Router /exports/profesores [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	file, err := h.exports.RenderRoster(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}

// Asistencia godoc
// @Summary Export the attendance day view
// @Tags Exports
// @Produce octet-stream
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv, xlsx or pdf (default csv)"
// @Success 200
// @Security BearerAuth
// @Router /exports/asistencias [get]
func (h *ExportHandler) Asistencia(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "fecha es requerida"))
		return
	}
	file, err := h.exports.RenderAsistencia(c.Request.Context(), fecha, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, file)
}
