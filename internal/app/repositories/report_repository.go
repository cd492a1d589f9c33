package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/db"
)

// ReportRepository runs the aggregation queries behind the reports
type ReportRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(pool db.Pool) *ReportRepository {
	return &ReportRepository{
		db: pool,
		sb: statementBuilder(),
	}
}

// StudentCourseCounts returns one row per student, ordered by student id,
// with the number of courses and completed courses.
func (r *ReportRepository) StudentCourseCounts(ctx context.Context) ([]*models.StudentReportRow, error) {
	sql, args, err := r.sb.Select(
		"s.first_name || ' ' || s.last_name AS full_name",
		"COUNT(cp.id) AS courses",
		"COUNT(cp.id) FILTER (WHERE cp.completed) AS completed_courses",
	).
		From("students s").
		LeftJoin("course_participants cp ON cp.student_id = s.id").
		GroupBy("s.id").
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying report: %w", err)
	}
	defer rows.Close()

	report := []*models.StudentReportRow{}
	for rows.Next() {
		row := &models.StudentReportRow{}
		if err := rows.Scan(&row.FullName, &row.Courses, &row.CompletedCourses); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return report, nil
}
