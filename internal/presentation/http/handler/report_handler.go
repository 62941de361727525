package handler

import (
	"bytes"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopsphere/storefront-api/internal/application/service"
	"github.com/shopsphere/storefront-api/internal/presentation/http/dto/response"
	"github.com/shopsphere/storefront-api/pkg/export"
)

// ReportHandler handles admin sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportQuery(c *gin.Context) *service.SalesReportQuery {
	return &service.SalesReportQuery{
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		ReportType: c.Query("reportType"),
	}
}

// GetSalesReport returns the aggregated report as JSON
// @Summary Sales Report
// @Description Aggregated sales rows and summary for the given range
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Range end (YYYY-MM-DD or RFC3339)"
// @Param reportType query string false "daily | weekly | monthly"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /admin/reports/sales [get]
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	report, err := h.reportService.GetSalesReport(c.Request.Context(), reportQuery(c))
	if err != nil {
		c.Error(err)
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated", report)
}

// DownloadPDF streams the report as a PDF attachment
func (h *ReportHandler) DownloadPDF(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reportService.RenderPDF(c.Request.Context(), reportQuery(c), &buf); err != nil {
		c.Error(err)
		response.Error(c, err)
		return
	}

	sendAttachment(c, export.PDFContentType, export.PDFFilename, buf.Bytes())
}

// DownloadExcel streams the report as a spreadsheet attachment
func (h *ReportHandler) DownloadExcel(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reportService.RenderExcel(c.Request.Context(), reportQuery(c), &buf); err != nil {
		c.Error(err)
		response.Error(c, err)
		return
	}

	sendAttachment(c, export.ExcelContentType, export.ExcelFilename, buf.Bytes())
}

// sendAttachment writes a fully rendered document. Rendering into memory
// first keeps the error path able to answer with a JSON body instead of a
// truncated download.
func sendAttachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Data(200, contentType, body)
}
