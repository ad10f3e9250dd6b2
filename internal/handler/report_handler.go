package handler

import (
	"github.com/gin-gonic/gin"

	"gstbilling/internal/service"
)

// ReportHandler handles register export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportRegister handles GET /api/v1/reports/register
// @Summary      Export invoice register
// @Description  Streams all invoices with their computed GST breakdowns as a CSV or XLSX file
// @Tags         reports
// @Produce      text/csv
// @Param        format query string false "File format" Enums(csv, xlsx) default(csv)
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/register [get]
func (h *ReportHandler) ExportRegister(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", "csv"))

	result, err := h.reportService.ExportRegister(c.Request.Context(), userID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(200, result.ContentType, result.Data)
}
