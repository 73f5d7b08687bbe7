package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
	"github.com/gestion-escolar/escuela-api/pkg/export"
)

type exportProfesorLister interface {
	List(ctx context.Context) ([]models.Profesor, error)
}

type exportAsistenciaView interface {
	Dia(ctx context.Context, fecha string) ([]models.RegistroAsistencia, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the teacher roster and attendance day views as
// CSV, XLSX or PDF downloads.
type ExportService struct {
	profesores  exportProfesorLister
	asistencias exportAsistenciaView
	csv         *export.CSVExporter
	xlsx        *export.XLSXExporter
	pdf         *export.PDFExporter
	logger      *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(profesores exportProfesorLister, asistencias exportAsistenciaView, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		profesores:  profesores,
		asistencias: asistencias,
		csv:         export.NewCSVExporter(),
		xlsx:        export.NewXLSXExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
	}
}

// RenderRoster exports the active teacher roster in the given format.
func (s *ExportService) RenderRoster(ctx context.Context, format string) (*ExportFile, error) {
	profesores, err := s.profesores.List(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"Nombre", "Email", "DNI", "Teléfono", "Situación de revista", "Materias"},
	}
	for _, profesor := range profesores {
		materias := ""
		for i, materia := range profesor.Materias {
			if i > 0 {
				materias += ", "
			}
			materias += materia.Nombre
		}
		data.Rows = append(data.Rows, map[string]string{
			"Nombre":               profesor.Nombre,
			"Email":                profesor.Email,
			"DNI":                  derefOrEmpty(profesor.DNI),
			"Teléfono":             derefOrEmpty(profesor.Telefono),
			"Situación de revista": string(profesor.SituacionRevista),
			"Materias":             materias,
		})
	}

	return s.render(data, format, "profesores", "Listado de profesores")
}

// RenderAsistencia exports the attendance day view for a date.
func (s *ExportService) RenderAsistencia(ctx context.Context, fecha, format string) (*ExportFile, error) {
	registros, err := s.asistencias.Dia(ctx, fecha)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Headers: []string{"Profesor", "Materia", "Presente", "Observación"},
	}
	for _, registro := range registros {
		presente := "No"
		if registro.Presente {
			presente = "Sí"
		}
		data.Rows = append(data.Rows, map[string]string{
			"Profesor":    registro.ProfesorNombre,
			"Materia":     registro.MateriaNombre,
			"Presente":    presente,
			"Observación": registro.Observacion,
		})
	}

	return s.render(data, format, "asistencia-"+fecha, "Asistencia del "+fecha)
}

func (s *ExportService) render(data export.Dataset, format, basename, title string) (*ExportFile, error) {
	switch format {
	case "csv", "":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el CSV")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: basename + ".csv"}, nil
	case "xlsx":
		content, err := s.xlsx.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el XLSX")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    basename + ".xlsx",
		}, nil
	case "pdf":
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el PDF")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: basename + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Formato no soportado: %s", format))
	}
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
