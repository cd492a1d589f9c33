package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

// AssignmentService manages course enrollments
type AssignmentService interface {
	AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) error
	UnassignStudents(ctx context.Context, courseID int64, studentIDs []int64) error
	ListParticipants(ctx context.Context, courseID int64) ([]*models.ParticipantDetail, error)
	SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error
}

type assignmentServiceImpl struct {
	participantRepo participantStore
	courseRepo      courseStore
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(participantRepo participantStore, courseRepo courseStore) AssignmentService {
	return &assignmentServiceImpl{
		participantRepo: participantRepo,
		courseRepo:      courseRepo,
	}
}

// payloadError turns a missing course into a payload error: the course id
// comes from the request body, not the URL.
func payloadError(courseID int64, err error) error {
	if errors.Is(err, apperrors.ErrCourseNotFound) {
		return fmt.Errorf("%w: course %d does not exist", apperrors.ErrInvalidCourseID, courseID)
	}
	if errors.Is(err, apperrors.ErrInvalidStudentIDs) {
		return err
	}
	return fmt.Errorf("error updating enrollments: %w", err)
}

// AssignStudents enrolls the students in the course. Either every student
// exists and all missing pairs are created, or nothing is written.
func (s *assignmentServiceImpl) AssignStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	if courseID <= 0 {
		return fmt.Errorf("%w: course must be positive", apperrors.ErrInvalidCourseID)
	}

	inserted, err := s.participantRepo.Assign(ctx, courseID, studentIDs)
	if err != nil {
		return payloadError(courseID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("courseID", courseID).
		Int("students", len(studentIDs)).
		Int64("created", inserted).
		Msg("Students assigned to course")
	return nil
}

// UnassignStudents removes the enrollments of the given students
func (s *assignmentServiceImpl) UnassignStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	if courseID <= 0 {
		return fmt.Errorf("%w: course must be positive", apperrors.ErrInvalidCourseID)
	}

	removed, err := s.participantRepo.Unassign(ctx, courseID, studentIDs)
	if err != nil {
		return payloadError(courseID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("courseID", courseID).
		Int("students", len(studentIDs)).
		Int64("removed", removed).
		Msg("Students unassigned from course")
	return nil
}

// ListParticipants returns the course's enrollments, 404 when the course is missing
func (s *assignmentServiceImpl) ListParticipants(ctx context.Context, courseID int64) ([]*models.ParticipantDetail, error) {
	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	participants, err := s.participantRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participants: %w", err)
	}
	return participants, nil
}

// SetCompleted marks a single enrollment as completed or not
func (s *assignmentServiceImpl) SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error {
	if err := s.participantRepo.SetCompleted(ctx, courseID, studentID, completed); err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("error updating participant: %w", err)
	}
	return nil
}
