package repositories

import (
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursedesk/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository      *CourseRepository
	StudentRepository     *StudentRepository
	ParticipantRepository *ParticipantRepository
	ReportRepository      *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(pool),
		StudentRepository:     NewStudentRepository(pool),
		ParticipantRepository: NewParticipantRepository(pool),
		ReportRepository:      NewReportRepository(pool),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// uniqueIDs returns the distinct ids in ascending order.
func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
