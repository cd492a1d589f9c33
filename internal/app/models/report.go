package models

// StudentReportRow is one line of the per-student course report.
type StudentReportRow struct {
	FullName         string `csv:"full_name" db:"full_name"`
	Courses          int64  `csv:"courses" db:"courses"`
	CompletedCourses int64  `csv:"completed_courses" db:"completed_courses"`
}
