package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.CourseWithCount, error)
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	PatchCourse(ctx context.Context, id int64, apply func(*models.Course) error) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateCourse checks field limits and the date range
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrInvalidCourseData)
	}
	if utf8.RuneCountInString(course.Name) > validation.CourseNameMaxLength {
		return fmt.Errorf("%w: name must be at most %d characters", apperrors.ErrInvalidCourseData, validation.CourseNameMaxLength)
	}

	if strings.TrimSpace(course.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", apperrors.ErrInvalidCourseData)
	}
	if utf8.RuneCountInString(course.Description) > validation.CourseDescriptionMaxLength {
		return fmt.Errorf("%w: description must be at most %d characters", apperrors.ErrInvalidCourseData, validation.CourseDescriptionMaxLength)
	}

	if !course.HasValidDateRange() {
		return apperrors.ErrInvalidDateRange
	}

	return nil
}

// CreateCourse validates and stores a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	created := *course
	created.ID = id
	return &created, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// ListCourses returns every course with its students count
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.CourseWithCount, error) {
	courses, err := s.courseRepo.ListWithStudentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse replaces all editable fields of an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil || course.ID <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrInvalidDateRange) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// PatchCourse loads the course, applies the partial change and validates the
// merged result, so a lone start_date or end_date is checked against the
// stored counterpart.
func (s *courseServiceImpl) PatchCourse(ctx context.Context, id int64, apply func(*models.Course) error) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(course); err != nil {
		return nil, err
	}

	return s.UpdateCourse(ctx, course)
}

// DeleteCourse removes a course and its enrollments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return err
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
