// Package export renders aggregated sales data into downloadable documents.
// Renderers write straight to the caller's io.Writer and never mutate their
// input.
package export

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingCustomer is returned when a detailed row carries no customer
// record at all. Individual missing fields degrade to placeholders instead.
var ErrMissingCustomer = errors.New("order row has no customer record")

// Placeholders for absent related-entity fields
const (
	placeholderNA      = "N/A"
	placeholderUnknown = "Unknown"
)

// Customer is the related-user data attached to a detailed row.
type Customer struct {
	Name  string
	Email string
}

// LineItem is one product line attached to a detailed row.
type LineItem struct {
	ProductName string
	Quantity    int
	Price       float64
}

// Row is one line of an aggregated sales report. Detailed rows represent a
// single order and may carry related-entity data; bucketed rows carry only
// the summed monetary fields.
type Row struct {
	Date        time.Time
	OrderCount  int
	Subtotal    float64
	Discount    float64
	FinalAmount float64

	// Set only on detailed (per-order) rows
	Detailed      bool
	Customer      *Customer
	PaymentMethod string
	OrderStatus   string
	Items         []LineItem
}

// customerName returns the row's customer name or a placeholder.
func (r *Row) customerName() string {
	if r.Customer == nil || r.Customer.Name == "" {
		return placeholderNA
	}
	return r.Customer.Name
}

// customerEmail returns the row's customer email or a placeholder.
func (r *Row) customerEmail() string {
	if r.Customer == nil || r.Customer.Email == "" {
		return placeholderNA
	}
	return r.Customer.Email
}

// validate rejects detailed rows whose customer record is wholly absent.
func (r *Row) validate() error {
	if r.Detailed && r.Customer == nil {
		return ErrMissingCustomer
	}
	return nil
}

// Summary holds the report's four scalar totals.
type Summary struct {
	TotalSalesCount  int
	TotalOrderAmount float64
	TotalDiscount    float64
	NetSales         float64
}

// Report is the input shape shared by both renderers.
type Report struct {
	PeriodStart string // echoed query bound; empty means open-ended
	PeriodEnd   string
	Currency    string // currency prefix for monetary cells, e.g. "$"
	Rows        []Row
	Summary     Summary
}

// periodCaption renders the report's date range for display.
func (rep *Report) periodCaption() string {
	start := rep.PeriodStart
	if start == "" {
		start = "Start"
	}
	end := rep.PeriodEnd
	if end == "" {
		end = "Present"
	}
	return fmt.Sprintf("Report Period: %s to %s", start, end)
}

// money formats an amount with the report's currency prefix.
func (rep *Report) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", rep.Currency, amount)
}
