package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/enum"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/shopsphere/storefront-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderRepo implements repository.OrderRepository for report tests
type mockOrderRepo struct {
	repository.OrderRepository

	orders     []entity.Order
	err        error
	calls      int
	lastParams *repository.ReportFilterParams
}

func (m *mockOrderRepo) ListForReport(ctx context.Context, params *repository.ReportFilterParams) ([]entity.Order, error) {
	m.calls++
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}

	var matched []entity.Order
	for _, order := range m.orders {
		if params.StartDate != nil && order.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && order.CreatedAt.After(*params.EndDate) {
			continue
		}
		matched = append(matched, order)
	}
	return matched, nil
}

func testOrders() []entity.Order {
	return []entity.Order{
		{
			ID:             uuid.New(),
			Subtotal:       100,
			DiscountAmount: 10,
			FinalAmount:    90,
			CreatedAt:      time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC),
			User:           entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
		},
		{
			ID:          uuid.New(),
			Subtotal:    200,
			FinalAmount: 200,
			CreatedAt:   time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC),
			User:        entity.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
		},
	}
}

func newTestReportService(repo *mockOrderRepo) *ReportService {
	return NewReportService(repo, 5*time.Second, "$")
}

func TestGetSalesReportDaily(t *testing.T) {
	repo := &mockOrderRepo{orders: testOrders()}
	svc := newTestReportService(repo)

	report, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{ReportType: "daily"})
	require.NoError(t, err)

	assert.Len(t, report.Rows, 2)
	assert.Equal(t, 2, report.Summary.TotalSalesCount)
	assert.Equal(t, 300.0, report.Summary.TotalOrderAmount)
	assert.Equal(t, 10.0, report.Summary.TotalDiscount)
	assert.Equal(t, 290.0, report.Summary.NetSales)
	assert.Equal(t, "daily", report.ReportType)

	// Daily rows are pass-through: one order each, original timestamps
	assert.Equal(t, 1, report.Rows[0].OrderCount)
	assert.NotNil(t, report.Rows[0].Order)
}

func TestGetSalesReportMonthly(t *testing.T) {
	repo := &mockOrderRepo{orders: testOrders()}
	svc := newTestReportService(repo)

	report, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{ReportType: "monthly"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	bucket := report.Rows[0]
	assert.Equal(t, 2, bucket.OrderCount)
	assert.Equal(t, 300.0, bucket.Subtotal)
	assert.Equal(t, 10.0, bucket.DiscountAmount)
	assert.Equal(t, 290.0, bucket.FinalAmount)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), bucket.Date)
	assert.Nil(t, bucket.Order)

	// Bucketed summary matches the daily totals
	assert.Equal(t, 2, report.Summary.TotalSalesCount)
	assert.Equal(t, 290.0, report.Summary.NetSales)
}

func TestGetSalesReportUnknownTypeDefaultsToDaily(t *testing.T) {
	repo := &mockOrderRepo{orders: testOrders()}
	svc := newTestReportService(repo)

	report, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{ReportType: "hourly"})
	require.NoError(t, err)
	assert.Equal(t, "daily", report.ReportType)
	assert.Len(t, report.Rows, 2)
}

func TestGetSalesReportInvalidStartDate(t *testing.T) {
	repo := &mockOrderRepo{orders: testOrders()}
	svc := newTestReportService(repo)

	_, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{StartDate: "not-a-date"})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "startDate", appErr.Errors[0].Field)

	// No store access before validation
	assert.Zero(t, repo.calls)
}

func TestGetSalesReportInvalidEndDate(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := newTestReportService(repo)

	_, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{EndDate: "2024-13-45"})
	require.Error(t, err)
	assert.Equal(t, "endDate", apperror.GetAppError(err).Errors[0].Field)
	assert.Zero(t, repo.calls)
}

func TestGetSalesReportInvertedRangeReturnsEmpty(t *testing.T) {
	repo := &mockOrderRepo{orders: testOrders()}
	svc := newTestReportService(repo)

	report, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{
		StartDate: "2024-02-01",
		EndDate:   "2024-01-01",
	})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, SalesReportSummary{}, report.Summary)
	assert.Equal(t, 1, repo.calls)
}

func TestGetSalesReportEmptyStore(t *testing.T) {
	svc := newTestReportService(&mockOrderRepo{})

	for _, reportType := range []string{"daily", "weekly", "monthly"} {
		report, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{ReportType: reportType})
		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Equal(t, SalesReportSummary{}, report.Summary)
	}
}

func TestGetSalesReportStoreFailure(t *testing.T) {
	repo := &mockOrderRepo{err: errors.New("connection refused")}
	svc := newTestReportService(repo)

	_, err := svc.GetSalesReport(context.Background(), &SalesReportQuery{})
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
}

func TestAggregationIsLossless(t *testing.T) {
	orders := testOrders()
	orders = append(orders, entity.Order{
		Subtotal:       55.5,
		DiscountAmount: 5.5,
		FinalAmount:    50,
		CreatedAt:      time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC),
	})

	var wantSubtotal float64
	for _, order := range orders {
		wantSubtotal += order.Subtotal
	}

	for _, reportType := range []string{ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly} {
		rows := aggregateByPeriod(orders, reportType)
		var gotSubtotal float64
		for _, row := range rows {
			gotSubtotal += row.Subtotal
		}
		assert.InDelta(t, wantSubtotal, gotSubtotal, 1e-9, "granularity %s", reportType)
	}
}

func TestAggregationIsDeterministic(t *testing.T) {
	orders := testOrders()
	reversed := []entity.Order{orders[1], orders[0]}

	for _, reportType := range []string{ReportTypeWeekly, ReportTypeMonthly} {
		first := aggregateByPeriod(orders, reportType)
		second := aggregateByPeriod(orders, reportType)
		assert.Equal(t, first, second, "same input twice, granularity %s", reportType)

		shuffled := aggregateByPeriod(reversed, reportType)
		assert.Equal(t, first, shuffled, "input order must not matter, granularity %s", reportType)
	}
}

func TestWeeklyBucketTimestampIsPeriodStart(t *testing.T) {
	// Friday and Sunday of the same ISO week; week started Monday 2024-01-01
	orders := []entity.Order{
		{Subtotal: 10, FinalAmount: 10, CreatedAt: time.Date(2024, time.January, 7, 23, 0, 0, 0, time.UTC)},
		{Subtotal: 20, FinalAmount: 20, CreatedAt: time.Date(2024, time.January, 5, 1, 0, 0, 0, time.UTC)},
	}

	rows := aggregateByPeriod(orders, ReportTypeWeekly)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, 2, rows[0].OrderCount)
}

func TestSummarizeNilRows(t *testing.T) {
	assert.Equal(t, SalesReportSummary{}, summarize(nil))
}

func TestRenderPDFAndExcel(t *testing.T) {
	orders := testOrders()
	orders[0].PaymentMethod = enum.PaymentMethodCashOnDelivery
	orders[0].OrderStatus = enum.OrderStatusDelivered
	orders[0].Items = []entity.OrderItem{
		{Quantity: 2, Price: 50, Product: entity.Product{Name: "Mug"}},
	}
	repo := &mockOrderRepo{orders: orders}
	svc := newTestReportService(repo)

	var pdfBuf bytes.Buffer
	require.NoError(t, svc.RenderPDF(context.Background(), &SalesReportQuery{}, &pdfBuf))
	assert.True(t, bytes.HasPrefix(pdfBuf.Bytes(), []byte("%PDF")))

	var xlsxBuf bytes.Buffer
	require.NoError(t, svc.RenderExcel(context.Background(), &SalesReportQuery{}, &xlsxBuf))
	assert.NotZero(t, xlsxBuf.Len())

	// Exports request related-entity expansion
	assert.True(t, repo.lastParams.ExpandRelated)
}

func TestRenderPDFMissingUserRecord(t *testing.T) {
	orders := testOrders()
	orders[0].User = entity.User{} // related record absent entirely
	repo := &mockOrderRepo{orders: orders}
	svc := newTestReportService(repo)

	var buf bytes.Buffer
	err := svc.RenderPDF(context.Background(), &SalesReportQuery{}, &buf)
	require.Error(t, err)
}
