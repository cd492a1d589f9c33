package models

import "time"

// Course represents an offered class with a date range.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
}

// HasValidDateRange reports whether the course does not end before it starts.
func (c *Course) HasValidDateRange() bool {
	return !c.EndDate.Before(c.StartDate)
}

// CourseWithCount is a course annotated with its number of participants.
type CourseWithCount struct {
	Course
	StudentsCount int64 `json:"studentsCount" db:"students_count"`
}
