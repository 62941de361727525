package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *Report {
	return &Report{
		PeriodStart: "2024-01-01",
		PeriodEnd:   "2024-01-31",
		Currency:    "$",
		Rows: []Row{
			{
				Date:          time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
				OrderCount:    1,
				Subtotal:      100,
				Discount:      10,
				FinalAmount:   90,
				Detailed:      true,
				Customer:      &Customer{Name: "Alice", Email: "alice@example.com"},
				PaymentMethod: "cashOnDelivery",
				OrderStatus:   "Delivered",
				Items: []LineItem{
					{ProductName: "Mug", Quantity: 2, Price: 50},
				},
			},
			{
				Date:        time.Date(2024, time.January, 20, 10, 0, 0, 0, time.UTC),
				OrderCount:  1,
				Subtotal:    200,
				Discount:    0,
				FinalAmount: 200,
				Detailed:    true,
				Customer:    &Customer{Name: "Bob"}, // email missing
			},
		},
		Summary: Summary{
			TotalSalesCount:  2,
			TotalOrderAmount: 300,
			TotalDiscount:    10,
			NetSales:         290,
		},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDFPaginates(t *testing.T) {
	rep := sampleReport()
	rep.Rows = nil
	for i := 0; i < 120; i++ {
		rep.Rows = append(rep.Rows, Row{
			Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%30),
			OrderCount:  1,
			Subtotal:    50,
			FinalAmount: 50,
			Detailed:    true,
			Customer:    &Customer{Name: fmt.Sprintf("Customer %d", i)},
		})
	}

	var small, big bytes.Buffer
	require.NoError(t, WritePDF(&small, sampleReport()))
	require.NoError(t, WritePDF(&big, rep))
	// 120 rows cannot fit on one A4 page
	assert.Greater(t,
		strings.Count(big.String(), "/Type /Page"),
		strings.Count(small.String(), "/Type /Page"),
	)
}

func TestWritePDFMissingCustomerRecord(t *testing.T) {
	rep := sampleReport()
	rep.Rows[0].Customer = nil

	var buf bytes.Buffer
	err := WritePDF(&buf, rep)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCustomer)
}

func TestWritePDFBucketedRowsNeedNoCustomer(t *testing.T) {
	rep := sampleReport()
	rep.Rows = []Row{
		{
			Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			OrderCount:  2,
			Subtotal:    300,
			Discount:    10,
			FinalAmount: 290,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, rep))
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(excelSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	name, err := f.GetCellValue(excelSheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	// Missing email degrades to a placeholder, row is still emitted
	email, err := f.GetCellValue(excelSheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "N/A", email)

	// Blank row after data, then the totals row
	blank, err := f.GetCellValue(excelSheetName, "A4")
	require.NoError(t, err)
	assert.Empty(t, blank)

	label, err := f.GetCellValue(excelSheetName, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Totals", label)

	net, err := f.GetCellValue(excelSheetName, "H5")
	require.NoError(t, err)
	assert.Equal(t, "290", net)
}

func TestWriteExcelMissingCustomerRecord(t *testing.T) {
	rep := sampleReport()
	rep.Rows[1].Customer = nil

	var buf bytes.Buffer
	err := WriteExcel(&buf, rep)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCustomer)
}

func TestDescribeItems(t *testing.T) {
	items := []LineItem{
		{ProductName: "Mug", Quantity: 2, Price: 50},
		{ProductName: "", Quantity: 1, Price: 10},
	}
	assert.Equal(t, "Mug (Qty: 2), Unknown (Qty: 1)", describeItems(items))
	assert.Equal(t, "Mug (Qty: 2, Price: 50); Unknown (Qty: 1, Price: 10)", describeItemsWithPrice(items))
	assert.Equal(t, "N/A", describeItemsWithPrice(nil))
}
