package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopsphere/storefront-api/internal/application/service"
	"github.com/shopsphere/storefront-api/internal/domain/entity"
	"github.com/shopsphere/storefront-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	repository.OrderRepository

	orders []entity.Order
	err    error
	calls  int
}

func (s *stubOrderRepo) ListForReport(ctx context.Context, params *repository.ReportFilterParams) ([]entity.Order, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func newReportRouter(repo *stubOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewReportHandler(service.NewReportService(repo, time.Second, "Rs. "))

	router := gin.New()
	reports := router.Group("/admin/reports")
	reports.GET("/sales", h.GetSalesReport)
	reports.GET("/sales/pdf", h.DownloadPDF)
	reports.GET("/sales/excel", h.DownloadExcel)
	return router
}

func reportOrders() []entity.Order {
	user := entity.User{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
	}
	return []entity.Order{
		{
			ID:             uuid.New(),
			CreatedAt:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			Subtotal:       100,
			DiscountAmount: 10,
			FinalAmount:    90,
			User:           user,
		},
		{
			ID:          uuid.New(),
			CreatedAt:   time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC),
			Subtotal:    200,
			FinalAmount: 200,
			User:        user,
		},
	}
}

func TestGetSalesReportJSON(t *testing.T) {
	router := newReportRouter(&stubOrderRepo{orders: reportOrders()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales?reportType=daily", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Rows    []json.RawMessage `json:"rows"`
			Summary struct {
				TotalSalesCount  int     `json:"total_sales_count"`
				TotalOrderAmount float64 `json:"total_order_amount"`
				TotalDiscount    float64 `json:"total_discount"`
				NetSales         float64 `json:"net_sales"`
			} `json:"summary"`
			ReportType string `json:"report_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Len(t, body.Data.Rows, 2)
	assert.Equal(t, 2, body.Data.Summary.TotalSalesCount)
	assert.Equal(t, 300.0, body.Data.Summary.TotalOrderAmount)
	assert.Equal(t, 10.0, body.Data.Summary.TotalDiscount)
	assert.Equal(t, 290.0, body.Data.Summary.NetSales)
	assert.Equal(t, "daily", body.Data.ReportType)
}

func TestGetSalesReportInvalidDate(t *testing.T) {
	repo := &stubOrderRepo{orders: reportOrders()}
	router := newReportRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales?startDate=not-a-date", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid startDate format")
	assert.Zero(t, repo.calls, "store must not be queried on a bad date")
}

func TestGetSalesReportStoreFailure(t *testing.T) {
	router := newReportRouter(&stubOrderRepo{err: errors.New("connection reset")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDownloadPDF(t *testing.T) {
	router := newReportRouter(&stubOrderRepo{orders: reportOrders()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales/pdf?reportType=daily", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sales_report.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestDownloadPDFRenderFailure(t *testing.T) {
	// A daily row whose user record is missing entirely cannot be rendered.
	orders := reportOrders()
	orders[0].User = entity.User{}
	router := newReportRouter(&stubOrderRepo{orders: orders})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales/pdf?reportType=daily", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestDownloadExcel(t *testing.T) {
	router := newReportRouter(&stubOrderRepo{orders: reportOrders()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/reports/sales/excel?reportType=monthly", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sales_report.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "xlsx body should be a zip archive")
}
