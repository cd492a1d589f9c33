package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/services"
	"github.com/yigit/coursedesk/internal/middleware"
	"github.com/yigit/coursedesk/internal/pkg/report"
)

// ReportController serves downloadable reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// StudentReport returns the per-student CSV report
// @Summary Download the student report
// @Description One CSV row per student: full_name, courses, completed_courses
// @Tags report
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV report"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /report [get]
func (c *ReportController) StudentReport(ctx *gin.Context) {
	body, err := c.reportService.StudentReportCSV(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", report.AttachmentDisposition(services.ReportFilename))
	ctx.Data(http.StatusOK, report.ContentType, body)
}
