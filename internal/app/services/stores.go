package services

import (
	"context"

	"github.com/yigit/coursedesk/internal/app/models"
)

// The services depend on these narrow views of the repositories so they can
// be exercised without a database.

type courseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	ListWithStudentCount(ctx context.Context) ([]*models.CourseWithCount, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type participantStore interface {
	Assign(ctx context.Context, courseID int64, studentIDs []int64) (int64, error)
	Unassign(ctx context.Context, courseID int64, studentIDs []int64) (int64, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.ParticipantDetail, error)
	SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error
}

type reportStore interface {
	StudentCourseCounts(ctx context.Context) ([]*models.StudentReportRow, error)
}
