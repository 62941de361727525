package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopsphere/storefront-api/pkg/calendar"
	"github.com/xuri/excelize/v2"
)

// Content type and suggested filename for the spreadsheet export
const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ExcelFilename    = "sales_report.xlsx"
)

const excelSheetName = "Sales Report"

var excelColumns = []struct {
	Header string
	Width  float64
}{
	{"Date", 15},
	{"Customer Name", 20},
	{"Customer Email", 25},
	{"Payment Method", 15},
	{"Order Status", 15},
	{"Subtotal", 10},
	{"Discount", 10},
	{"Final Amount", 12},
	{"Products", 40},
}

// WriteExcel renders the report as a single-sheet workbook onto w.
func WriteExcel(w io.Writer, rep *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return err
	}

	headers := make([]interface{}, len(excelColumns))
	for i, col := range excelColumns {
		headers[i] = col.Header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(excelSheetName, name, name, col.Width); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(excelSheetName, "A1", &headers); err != nil {
		return err
	}

	rowNum := 1
	for i := range rep.Rows {
		row := &rep.Rows[i]
		if err := row.validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		rowNum++
		cells := []interface{}{
			calendar.FormatDate(row.Date),
			row.customerName(),
			row.customerEmail(),
			orDefault(row.PaymentMethod),
			orDefault(row.OrderStatus),
			row.Subtotal,
			row.Discount,
			row.FinalAmount,
			describeItemsWithPrice(row.Items),
		}
		if err := f.SetSheetRow(excelSheetName, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
			return err
		}
	}

	// Blank spacer row, then the totals row
	rowNum += 2
	totals := []interface{}{
		"Totals", nil, nil, nil, nil,
		rep.Summary.TotalOrderAmount,
		rep.Summary.TotalDiscount,
		rep.Summary.NetSales,
	}
	if err := f.SetSheetRow(excelSheetName, fmt.Sprintf("A%d", rowNum), &totals); err != nil {
		return err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(excelColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(excelSheetName,
		fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", last, rowNum), boldStyle); err != nil {
		return err
	}

	return f.Write(w)
}

func orDefault(s string) string {
	if s == "" {
		return placeholderNA
	}
	return s
}

// describeItemsWithPrice renders line items as "name (Qty: n, Price: p)"
// joined by semicolons; an absent item list renders as a placeholder.
func describeItemsWithPrice(items []LineItem) string {
	if len(items) == 0 {
		return placeholderNA
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.ProductName
		if name == "" {
			name = placeholderUnknown
		}
		parts = append(parts, fmt.Sprintf("%s (Qty: %d, Price: %g)", name, item.Quantity, item.Price))
	}
	return strings.Join(parts, "; ")
}
