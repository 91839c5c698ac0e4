package handlers

import (
	"net/http"

	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportsHandler serves aggregate dashboard figures.
type reportsHandler struct {
	reportingService portssvc.ReportingService
}

func newReportsHandler(rs portssvc.ReportingService) *reportsHandler {
	return &reportsHandler{reportingService: rs}
}

// registerReportRoutes registers reporting routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportsHandler(reportingService)
	rg.GET("/reports/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the summary report
// @Description Returns aggregate counts per entity and status for dashboards.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryReportResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportsHandler) getSummary(c *gin.Context) {
	report, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build summary report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryReportResponse(report))
}
