package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/shopsphere/storefront-api/pkg/apperror"
	"github.com/shopsphere/storefront-api/pkg/calendar"
	"github.com/shopsphere/storefront-api/pkg/export"
)

// Report types supported by the sales report endpoints
const (
	ReportTypeDaily   = "daily"
	ReportTypeWeekly  = "weekly"
	ReportTypeMonthly = "monthly"
)

// Accepted layouts for report date bounds
var reportDateLayouts = []string{"2006-01-02", time.RFC3339}

// ReportService builds sales reports from the order store
type ReportService struct {
	orderRepo    repository.OrderRepository
	fetchTimeout time.Duration
	currency     string
}

// NewReportService creates a new report service. fetchTimeout bounds the
// order fetch per request; currency prefixes monetary values in exports.
func NewReportService(orderRepo repository.OrderRepository, fetchTimeout time.Duration, currency string) *ReportService {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &ReportService{
		orderRepo:    orderRepo,
		fetchTimeout: fetchTimeout,
		currency:     currency,
	}
}

// SalesReportQuery carries the raw query parameters of a report request
type SalesReportQuery struct {
	StartDate  string
	EndDate    string
	ReportType string
}

// normalizedType maps the raw report type onto a supported one, defaulting
// to daily as the original endpoints did.
func (q *SalesReportQuery) normalizedType() string {
	switch q.ReportType {
	case ReportTypeWeekly, ReportTypeMonthly:
		return q.ReportType
	default:
		return ReportTypeDaily
	}
}

// SalesReportRow is one aggregated line of a report. Daily rows represent a
// single order and keep a reference to it for related-entity rendering;
// weekly/monthly rows are period buckets with Order left nil.
type SalesReportRow struct {
	Date           time.Time     `json:"date"`
	OrderCount     int           `json:"order_count"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discount_amount"`
	FinalAmount    float64       `json:"final_amount"`
	Order          *entity.Order `json:"order,omitempty"`
}

// SalesReportSummary holds the four report totals
type SalesReportSummary struct {
	TotalSalesCount  int     `json:"total_sales_count"`
	TotalOrderAmount float64 `json:"total_order_amount"`
	TotalDiscount    float64 `json:"total_discount"`
	NetSales         float64 `json:"net_sales"`
}

// SalesReport is the viewer-facing report payload
type SalesReport struct {
	Rows       []SalesReportRow   `json:"rows"`
	Summary    SalesReportSummary `json:"summary"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	ReportType string             `json:"report_type"`
}

// ParseReportRange parses the optional date bounds of a report query.
// An unparsable bound fails with a 400 error naming the offending field;
// absent bounds stay nil (open-ended range). No range-order validation is
// performed: an inverted range simply matches nothing.
func ParseReportRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	start, err := parseReportDate(startDate)
	if err != nil {
		return nil, nil, apperror.NewInvalidDateError("startDate")
	}
	end, err := parseReportDate(endDate)
	if err != nil {
		return nil, nil, apperror.NewInvalidDateError("endDate")
	}
	return start, end, nil
}

func parseReportDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range reportDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// GetSalesReport runs the report pipeline and returns the viewer payload.
func (s *ReportService) GetSalesReport(ctx context.Context, query *SalesReportQuery) (*SalesReport, error) {
	rows, summary, err := s.buildReport(ctx, query, false)
	if err != nil {
		return nil, err
	}
	return &SalesReport{
		Rows:       rows,
		Summary:    summary,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		ReportType: query.normalizedType(),
	}, nil
}

// RenderPDF runs the report pipeline with related entities expanded and
// streams the PDF document onto w.
func (s *ReportService) RenderPDF(ctx context.Context, query *SalesReportQuery, w io.Writer) error {
	rep, err := s.buildExportReport(ctx, query)
	if err != nil {
		return err
	}
	return export.WritePDF(w, rep)
}

// RenderExcel runs the report pipeline with related entities expanded and
// streams the workbook onto w.
func (s *ReportService) RenderExcel(ctx context.Context, query *SalesReportQuery, w io.Writer) error {
	rep, err := s.buildExportReport(ctx, query)
	if err != nil {
		return err
	}
	return export.WriteExcel(w, rep)
}

// buildReport parses the range, fetches non-cancelled orders and aggregates
// them per the requested granularity. Date parsing happens before any store
// access.
func (s *ReportService) buildReport(ctx context.Context, query *SalesReportQuery, expand bool) ([]SalesReportRow, SalesReportSummary, error) {
	start, end, err := ParseReportRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, SalesReportSummary{}, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	orders, err := s.orderRepo.ListForReport(fetchCtx, &repository.ReportFilterParams{
		StartDate:     start,
		EndDate:       end,
		ExpandRelated: expand,
	})
	if err != nil {
		return nil, SalesReportSummary{}, err
	}

	rows := aggregateByPeriod(orders, query.normalizedType())
	return rows, summarize(rows), nil
}

func (s *ReportService) buildExportReport(ctx context.Context, query *SalesReportQuery) (*export.Report, error) {
	rows, summary, err := s.buildReport(ctx, query, true)
	if err != nil {
		return nil, err
	}
	return &export.Report{
		PeriodStart: query.StartDate,
		PeriodEnd:   query.EndDate,
		Currency:    s.currency,
		Rows:        buildExportRows(rows),
		Summary: export.Summary{
			TotalSalesCount:  summary.TotalSalesCount,
			TotalOrderAmount: summary.TotalOrderAmount,
			TotalDiscount:    summary.TotalDiscount,
			NetSales:         summary.NetSales,
		},
	}, nil
}

// aggregateByPeriod groups orders into report rows. Daily granularity is a
// pass-through with one row per order; weekly and monthly granularities sum
// the monetary fields into period buckets stamped with the period start.
func aggregateByPeriod(orders []entity.Order, reportType string) []SalesReportRow {
	switch reportType {
	case ReportTypeMonthly:
		return aggregateBuckets(orders, calendar.MonthKey, calendar.StartOfMonth)
	case ReportTypeWeekly:
		return aggregateBuckets(orders, calendar.WeekKey, calendar.StartOfWeek)
	default:
		rows := make([]SalesReportRow, 0, len(orders))
		for i := range orders {
			order := &orders[i]
			rows = append(rows, SalesReportRow{
				Date:           order.CreatedAt,
				OrderCount:     1,
				Subtotal:       order.Subtotal,
				DiscountAmount: order.DiscountAmount,
				FinalAmount:    order.FinalAmount,
				Order:          order,
			})
		}
		return rows
	}
}

// aggregateBuckets folds orders into period buckets. The bucket timestamp is
// derived from the period key alone, so the result does not depend on the
// order in which orders arrive. Buckets are returned sorted ascending by
// period start.
func aggregateBuckets(orders []entity.Order, keyFn func(time.Time) string, startFn func(time.Time) time.Time) []SalesReportRow {
	buckets := make(map[string]*SalesReportRow)
	for i := range orders {
		order := &orders[i]
		key := keyFn(order.CreatedAt)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &SalesReportRow{Date: startFn(order.CreatedAt)}
			buckets[key] = bucket
		}
		bucket.Subtotal += order.Subtotal
		bucket.DiscountAmount += order.DiscountAmount
		bucket.FinalAmount += order.FinalAmount
		bucket.OrderCount++
	}

	rows := make([]SalesReportRow, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, *bucket)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// summarize reduces report rows into the four totals. A nil or empty row set
// yields a zero summary.
func summarize(rows []SalesReportRow) SalesReportSummary {
	var summary SalesReportSummary
	for i := range rows {
		summary.TotalSalesCount += rows[i].OrderCount
		summary.TotalOrderAmount += rows[i].Subtotal
		summary.TotalDiscount += rows[i].DiscountAmount
		summary.NetSales += rows[i].FinalAmount
	}
	return summary
}

// buildExportRows maps report rows onto the renderers' input shape. Daily
// rows carry related-entity data when the store expanded it; a zero user ID
// means the user record itself was absent, which the renderers reject.
func buildExportRows(rows []SalesReportRow) []export.Row {
	out := make([]export.Row, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		exportRow := export.Row{
			Date:        row.Date,
			OrderCount:  row.OrderCount,
			Subtotal:    row.Subtotal,
			Discount:    row.DiscountAmount,
			FinalAmount: row.FinalAmount,
		}
		if order := row.Order; order != nil {
			exportRow.Detailed = true
			exportRow.PaymentMethod = order.PaymentMethod.String()
			exportRow.OrderStatus = order.OrderStatus.String()
			if order.User.ID != uuid.Nil {
				exportRow.Customer = &export.Customer{
					Name:  order.User.Name,
					Email: order.User.Email,
				}
			}
			for _, item := range order.Items {
				exportRow.Items = append(exportRow.Items, export.LineItem{
					ProductName: item.Product.Name,
					Quantity:    item.Quantity,
					Price:       item.Price,
				})
			}
		}
		out = append(out, exportRow)
	}
	return out
}
