// Package export renders already-loaded page data into downloadable
// documents. It never queries storage; callers pass the rows they are
// currently displaying so the document matches the page exactly.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Column describes one table column in the exported document.
type Column struct {
	Header string
	// Width in millimeters. Zero means an equal share of the page width.
	Width float64
}

// TableDocument describes a one-table PDF export.
type TableDocument struct {
	Title    string
	Subtitle string
	Columns  []Column
	Rows     [][]string
	// Landscape widens the page for tables with many columns.
	Landscape bool
}

const (
	headerFillR = 31
	headerFillG = 58
	headerFillB = 95
	cellPadding = 2.0
	lineHeight  = 5.0
)

// RenderTablePDF renders the document and returns the PDF bytes.
func RenderTablePDF(doc TableDocument) ([]byte, error) {
	if len(doc.Columns) == 0 {
		return nil, fmt.Errorf("render pdf: no columns")
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Columns) {
			return nil, fmt.Errorf("render pdf: row %d has %d cells, want %d", i, len(row), len(doc.Columns))
		}
	}

	orientation := "P"
	if doc.Landscape {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	widths := columnWidths(pdf, doc.Columns)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(headerFillR, headerFillG, headerFillB)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], 7, col.Header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()

	for _, row := range doc.Rows {
		h := rowHeight(pdf, widths, row)
		if pdf.GetY()+h > pageH-marginB {
			pdf.AddPage()
			drawHeader()
		}
		drawRow(pdf, widths, row, h)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths resolves zero widths to an equal split of the leftover width.
func columnWidths(pdf *fpdf.Fpdf, cols []Column) []float64 {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	usable := pageW - marginL - marginR

	widths := make([]float64, len(cols))
	fixed := 0.0
	flex := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			fixed += c.Width
		} else {
			flex++
		}
	}
	if flex > 0 {
		share := (usable - fixed) / float64(flex)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// rowHeight measures the tallest wrapped cell in the row.
func rowHeight(pdf *fpdf.Fpdf, widths []float64, row []string) float64 {
	h := lineHeight
	for i, cell := range row {
		lines := pdf.SplitText(cell, widths[i]-cellPadding)
		if cellH := float64(len(lines)) * lineHeight; cellH > h {
			h = cellH
		}
	}
	return h + cellPadding
}

func drawRow(pdf *fpdf.Fpdf, widths []float64, row []string, h float64) {
	x0 := pdf.GetX()
	y0 := pdf.GetY()
	x := x0
	for i, cell := range row {
		pdf.Rect(x, y0, widths[i], h, "D")
		pdf.SetXY(x, y0+cellPadding/2)
		pdf.MultiCell(widths[i], lineHeight, cell, "", "L", false)
		x += widths[i]
	}
	pdf.SetXY(x0, y0+h)
}

// Dash is the placeholder for empty cells in exported tables.
const Dash = "-"

// CellOrDash returns the trimmed value, or the dash placeholder when empty.
func CellOrDash(v string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return Dash
}

// CellPtr dereferences an optional string cell.
func CellPtr(v *string) string {
	if v == nil {
		return Dash
	}
	return CellOrDash(*v)
}
