package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTablePDF(t *testing.T) {
	doc := TableDocument{
		Title:    "Opportunities",
		Subtitle: "Office of Planning",
		Columns: []Column{
			{Header: "Statement"},
			{Header: "Department", Width: 40},
			{Header: "Budget", Width: 25},
		},
		Rows: [][]string{
			{"Expand research partnerships with regional institutes", "Research", "150000.00"},
			{"Digitize records", "Registrar", "-"},
		},
	}

	out, err := RenderTablePDF(doc)

	require.NoError(t, err)
	assert.True(t, len(out) > 500, "expected a non-trivial document")
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderTablePDFNoColumns(t *testing.T) {
	_, err := RenderTablePDF(TableDocument{Title: "Empty"})
	assert.Error(t, err)
}

func TestRenderTablePDFRowShapeMismatch(t *testing.T) {
	doc := TableDocument{
		Title:   "Leads",
		Columns: []Column{{Header: "Name"}},
		Rows:    [][]string{{"a", "extra"}},
	}
	_, err := RenderTablePDF(doc)
	assert.Error(t, err)
}

func TestRenderTablePDFManyRowsPaginates(t *testing.T) {
	doc := TableDocument{
		Title:   "Goals",
		Columns: []Column{{Header: "No", Width: 15}, {Header: "Name"}},
	}
	for i := 0; i < 120; i++ {
		doc.Rows = append(doc.Rows, []string{"1", "Strengthen institutional quality assurance"})
	}

	out, err := RenderTablePDF(doc)
	require.NoError(t, err)
	assert.True(t, len(out) > 2000)
}

func TestCellHelpers(t *testing.T) {
	assert.Equal(t, "-", CellOrDash("  "))
	assert.Equal(t, "x", CellOrDash(" x "))
	assert.Equal(t, "-", CellPtr(nil))
	v := "budget"
	assert.Equal(t, "budget", CellPtr(&v))
}
