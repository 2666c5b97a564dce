// Package pdfrender turns a sales report into a downloadable PDF document.
package pdfrender

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/dcastano/ventas-api/internal/domain/report"
	"github.com/go-pdf/fpdf"
)

// Renderer is the interface for rendering a sales report to PDF bytes.
type Renderer interface {
	// Render produces a PDF for the report, stamped with the identity of
	// the administrator who requested it.
	Render(rep *report.Report, requestedBy string) ([]byte, error)
}

// --- fpdf renderer ---

type fpdfRenderer struct{}

// New creates a PDF renderer backed by fpdf.
func New() Renderer {
	return &fpdfRenderer{}
}

func (r *fpdfRenderer) Render(rep *report.Report, requestedBy string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Reporte de ventas"), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Reporte de ventas"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Generado: %s UTC", rep.GeneratedAt.UTC().Format(time.DateTime))), "", 1, "C", false, 0, "")
	if requestedBy != "" {
		pdf.CellFormat(0, 5, tr("Solicitado por: "+requestedBy), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	writeFilterLine(pdf, tr, rep.Filters)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(110, 8, tr("Grupo"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, tr("Cantidad"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, tr("Ventas"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range rep.Entries {
		pdf.CellFormat(110, 7, tr(entry.Group), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, strconv.Itoa(entry.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatCents(entry.TotalCents), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(110, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, strconv.Itoa(rep.TotalItems), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, formatCents(rep.TotalCents), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfrender: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFilterLine(pdf *fpdf.Fpdf, tr func(string) string, filters report.FilterSet) {
	line := "Agrupado por: " + string(filters.GroupBy)
	if filters.From != nil {
		line += "  |  Desde: " + filters.From.Format("2006-01-02")
	}
	if filters.To != nil {
		line += "  |  Hasta: " + filters.To.Format("2006-01-02")
	}
	if filters.ProductID != nil {
		line += "  |  Producto: " + strconv.Itoa(*filters.ProductID)
	}
	if filters.Category != nil {
		line += "  |  Categoría: " + *filters.Category
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func formatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
