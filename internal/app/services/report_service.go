package services

import (
	"context"
	"fmt"
	"io"

	"github.com/yigit/coursedesk/internal/pkg/report"
)

// ReportFilename is the download name of the student report
const ReportFilename = "report.csv"

// ReportService builds downloadable reports
type ReportService interface {
	StudentReportCSV(ctx context.Context) ([]byte, error)
	WriteStudentReport(ctx context.Context, w io.Writer) error
}

type reportServiceImpl struct {
	reportRepo reportStore
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo reportStore) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
	}
}

// StudentReportCSV renders one line per student with course and completion counts
func (s *reportServiceImpl) StudentReportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.reportRepo.StudentCourseCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building report: %w", err)
	}
	return report.RenderCSV(rows)
}

// WriteStudentReport streams the same report to w
func (s *reportServiceImpl) WriteStudentReport(ctx context.Context, w io.Writer) error {
	rows, err := s.reportRepo.StudentCourseCounts(ctx)
	if err != nil {
		return fmt.Errorf("error building report: %w", err)
	}
	return report.WriteCSV(w, rows)
}
