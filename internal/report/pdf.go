package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"taskletix.app/intake/internal/model"
)

const (
	pageMargin     = 10.0 // mm
	titleFontSize  = 18.0
	headerFontSize = 10.0
	bodyFontSize   = 8.0
	headerPadding  = 4.0
	bodyLineHeight = 4.0
	cellPadding    = 1.5
)

type rgb struct{ r, g, b int }

var (
	colorTitle      = rgb{0x11, 0x18, 0x27}
	colorHeaderBg   = rgb{0x37, 0x41, 0x51}
	colorHeaderFg   = rgb{0xF5, 0xF5, 0xF5}
	colorGrid       = rgb{0xD1, 0xD5, 0xDB}
	colorRowAlt     = rgb{0xF9, 0xFA, 0xFB}
	colorRowPlain   = rgb{0xFF, 0xFF, 0xFF}
	colorBodyText   = rgb{0x11, 0x18, 0x27}
	colorHeaderRule = rgb{0x11, 0x18, 0x27}
)

// PDFRenderer lays the export table out on landscape A4 pages with the
// header row repeated on each page.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(rows []model.Submission) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCatalogSort(true)
	stamp := documentDate(rows)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("taskletix-intake", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := columnWidths(pdf)

	pdf.AddPage()
	drawTitle(pdf, tr)
	drawHeader(pdf, tr, widths)

	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - pageMargin

	for i, row := range rows {
		cells := Cells(row)
		for j := range cells {
			cells[j] = tr(cells[j])
		}

		height := rowHeight(pdf, cells, widths)
		if pdf.GetY()+height > bottom {
			pdf.AddPage()
			drawHeader(pdf, tr, widths)
		}

		fill := colorRowPlain
		if i%2 == 1 {
			fill = colorRowAlt
		}
		drawRow(pdf, cells, widths, height, fill)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("laying out report: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths scales the relative Column widths to the printable width.
func columnWidths(pdf *fpdf.Fpdf) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	printable := pageWidth - 2*pageMargin

	var total float64
	for _, c := range Columns {
		total += c.Width
	}

	widths := make([]float64, len(Columns))
	for i, c := range Columns {
		widths[i] = printable * c.Width / total
	}
	return widths
}

func drawTitle(pdf *fpdf.Fpdf, tr func(string) string) {
	pageWidth, _ := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.SetTextColor(colorTitle.r, colorTitle.g, colorTitle.b)
	pdf.CellFormat(pageWidth-2*pageMargin, 10, tr(Title), "", 1, "C", false, 0, "")
	pdf.Ln(8)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64) {
	pdf.SetFont("Helvetica", "B", headerFontSize)
	pdf.SetFillColor(colorHeaderBg.r, colorHeaderBg.g, colorHeaderBg.b)
	pdf.SetTextColor(colorHeaderFg.r, colorHeaderFg.g, colorHeaderFg.b)
	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)
	pdf.SetLineWidth(0.3)

	height := headerFontSize*0.3528 + 2*headerPadding // pt -> mm
	for i, c := range Columns {
		pdf.CellFormat(widths[i], height, tr(c.Header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	x, y := pdf.GetXY()
	pdf.SetDrawColor(colorHeaderRule.r, colorHeaderRule.g, colorHeaderRule.b)
	pdf.SetLineWidth(0.7)
	pdf.Line(x, y, x+sum(widths), y)
	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.SetTextColor(colorBodyText.r, colorBodyText.g, colorBodyText.b)
}

func rowHeight(pdf *fpdf.Fpdf, cells []string, widths []float64) float64 {
	maxLines := 1
	for i, cell := range cells {
		lines := len(pdf.SplitLines([]byte(cell), widths[i]-2*cellPadding))
		if lines > maxLines {
			maxLines = lines
		}
	}
	return float64(maxLines)*bodyLineHeight + 2*cellPadding
}

func drawRow(pdf *fpdf.Fpdf, cells []string, widths []float64, height float64, fill rgb) {
	x, y := pdf.GetXY()
	pdf.SetFillColor(fill.r, fill.g, fill.b)

	for i, cell := range cells {
		pdf.Rect(x, y, widths[i], height, "FD")
		pdf.SetXY(x+cellPadding, y+cellPadding)
		pdf.MultiCell(widths[i]-2*cellPadding, bodyLineHeight, cell, "", "L", false)
		x += widths[i]
	}

	pdf.SetXY(pageMargin, y+height)
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
