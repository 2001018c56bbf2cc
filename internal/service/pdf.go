package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type reportColumn struct {
	Header string
	Width  float64
}

type reportTable struct {
	Title   string
	Period  string
	Columns []reportColumn
	Rows    [][]string
}

// renderReportPDF lays out a title, the reporting period and a ranked
// table. Amounts use an "Rs " prefix because the core PDF fonts have
// no rupee glyph.
func renderReportPDF(table reportTable) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, table.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, table.Period, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range table.Columns {
			pdf.CellFormat(col.Width, 8, col.Header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	for _, row := range table.Rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}
		for i, cell := range row {
			pdf.CellFormat(table.Columns[i].Width, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Rows) == 0 {
		pdf.CellFormat(0, 8, "No data for this period", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
