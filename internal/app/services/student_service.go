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

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	PatchStudent(ctx context.Context, id int64, apply func(*models.Student)) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

func validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	names := []struct{ field, value string }{
		{"first_name", student.FirstName},
		{"last_name", student.LastName},
	}
	for _, n := range names {
		if strings.TrimSpace(n.value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrInvalidStudentData, n.field)
		}
		if utf8.RuneCountInString(n.value) > validation.StudentNameMaxLength {
			return fmt.Errorf("%w: %s must be at most %d characters", apperrors.ErrInvalidStudentData, n.field, validation.StudentNameMaxLength)
		}
	}

	if err := validation.Var(student.Email, validation.StudentEmailRules); err != nil {
		return fmt.Errorf("%w: email must be a valid address of at most %d characters", apperrors.ErrInvalidStudentData, validation.StudentEmailMaxLength)
	}

	return nil
}

// CreateStudent validates and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	created := *student
	created.ID = id
	return &created, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents returns all students ordered by id
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces all editable fields of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil || student.ID <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// PatchStudent applies a partial change to a stored student and validates the result
func (s *studentServiceImpl) PatchStudent(ctx context.Context, id int64, apply func(*models.Student)) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(student)
	return s.UpdateStudent(ctx, student)
}

// DeleteStudent removes a student and their enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
