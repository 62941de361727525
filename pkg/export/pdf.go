package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopsphere/storefront-api/pkg/calendar"
)

// Content type and suggested filename for the PDF export
const (
	PDFContentType = "application/pdf"
	PDFFilename    = "sales_report.pdf"
)

// PDF layout constants, in millimeters on an A4 portrait page
const (
	pdfMargin       = 10.0
	pdfRowHeight    = 6.0
	pdfDetailHeight = 4.0
	pdfBreakGuard   = 25.0 // start a new page when the cursor gets this close to the bottom
)

var pdfColumnWidths = [6]float64{25, 35, 50, 25, 25, 30}

var pdfHeaders = [6]string{"Date", "Customer", "Email", "Subtotal", "Discount", "Final Amount"}

// WritePDF renders the report as a paginated PDF document onto w.
func WritePDF(w io.Writer, rep *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	// Title and period caption
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "Sales Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, rep.periodCaption(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Summary block
	pdf.SetFont("Helvetica", "BU", 12)
	pdf.CellFormat(0, 6, "Summary Statistics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total Sales Count: %d", rep.Summary.TotalSalesCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Total Order Amount: "+rep.money(rep.Summary.TotalOrderAmount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Total Discount: "+rep.money(rep.Summary.TotalDiscount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Net Sales: "+rep.money(rep.Summary.NetSales), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writePDFTableHeader(pdf)

	for i := range rep.Rows {
		row := &rep.Rows[i]
		if err := row.validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		if pdf.GetY() > pageHeight-pdfBreakGuard {
			pdf.AddPage()
			writePDFTableHeader(pdf)
		}

		cells := [6]string{
			calendar.FormatDate(row.Date),
			row.customerName(),
			row.customerEmail(),
			rep.money(row.Subtotal),
			rep.money(row.Discount),
			rep.money(row.FinalAmount),
		}
		for c, text := range cells {
			align := "L"
			if c >= 3 {
				align = "R"
			}
			pdf.CellFormat(pdfColumnWidths[c], pdfRowHeight, text, "", 0, align, false, 0, "")
		}
		pdf.Ln(pdfRowHeight)

		if len(row.Items) > 0 {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.MultiCell(tableWidth(), pdfDetailHeight, "Products: "+describeItems(row.Items), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
		}

		drawSeparator(pdf)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func writePDFTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	for c, header := range pdfHeaders {
		pdf.CellFormat(pdfColumnWidths[c], pdfRowHeight, header, "", 0, "C", false, 0, "")
	}
	pdf.Ln(pdfRowHeight)
	drawSeparator(pdf)
	pdf.SetFont("Helvetica", "", 10)
}

// drawSeparator draws a thin grey rule across the table at the current cursor
func drawSeparator(pdf *fpdf.Fpdf) {
	y := pdf.GetY()
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	pdf.Line(pdfMargin, y, pdfMargin+tableWidth(), y)
	pdf.Ln(1.5)
}

func tableWidth() float64 {
	var total float64
	for _, w := range pdfColumnWidths {
		total += w
	}
	return total
}

// describeItems renders a row's line items as "name (Qty: n)" joined by commas
func describeItems(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.ProductName
		if name == "" {
			name = placeholderUnknown
		}
		parts = append(parts, fmt.Sprintf("%s (Qty: %d)", name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
