package handler

import (
	"errors"
	"net/http"

	"github.com/dcastano/ventas-api/internal/application/service"
	"github.com/dcastano/ventas-api/internal/domain/report"
	"github.com/dcastano/ventas-api/internal/presentation/http/dto/response"
	"github.com/dcastano/ventas-api/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles the sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Options returns the filter choices for the report form
func (h *ReportHandler) Options(c *gin.Context) {
	options, err := h.reportService.GetReportOptions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report options retrieved", options)
}

// ViewSales builds the sales report and returns it as JSON
func (h *ReportHandler) ViewSales(c *gin.Context) {
	var raw report.RawFilters
	if err := c.ShouldBind(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rep, err := h.reportService.BuildSalesReport(c.Request.Context(), raw)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, "Report generated", rep)
}

// DownloadSales builds the sales report and streams it as a PDF attachment.
// When PDF rendering is unavailable the JSON report is returned instead,
// with a warning, so the request never fails outright.
func (h *ReportHandler) DownloadSales(c *gin.Context) {
	var raw report.RawFilters
	if err := c.ShouldBind(&raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rep, doc, err := h.reportService.ExportSalesReportPDF(c.Request.Context(), raw, GetUsername(c))
	if err != nil {
		h.reportError(c, err)
		return
	}

	if doc == nil {
		response.OK(c, "PDF export unavailable, returning report data", rep)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_ventas.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// reportError maps pipeline errors to HTTP status codes
func (h *ReportHandler) reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrInvalidFilter):
		response.Error(c, apperror.NewUnprocessableError(err.Error()))
	case errors.Is(err, report.ErrStorageUnavailable):
		response.Error(c, apperror.NewServiceUnavailableError("Report data is temporarily unavailable"))
	default:
		response.Error(c, err)
	}
}
