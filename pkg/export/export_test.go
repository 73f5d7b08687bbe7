package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Profesor", "Materia", "Presente"},
		Rows: []map[string]string{
			{"Profesor": "Ana García", "Materia": "Matemática", "Presente": "Sí"},
			{"Profesor": "Benito Ruiz", "Materia": "Historia", "Presente": "No"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	content, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Profesor,Materia,Presente")
	assert.Contains(t, string(content), "Ana García,Matemática,Sí")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestXLSXExporterRender(t *testing.T) {
	content, err := NewXLSXExporter().Render(sampleDataset(), "Asistencia")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue("Asistencia", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Profesor", cell)

	cell, err = f.GetCellValue("Asistencia", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Matemática", cell)
}

func TestPDFExporterRender(t *testing.T) {
	content, err := NewPDFExporter().Render(sampleDataset(), "Asistencia del 2026-03-10")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}
