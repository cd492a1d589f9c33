package dto

import (
	"fmt"

	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/helpers"
)

// CourseRequest is the payload for creating or fully replacing a course
type CourseRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=50" example:"Black Magic"`
	Description string `json:"description" binding:"required,notblank,max=1024" example:"Crucio"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2025-09-01"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2025-12-20"`
}

// ToModel parses the request dates into a Course
func (r *CourseRequest) ToModel() (*models.Course, error) {
	start, err := helpers.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date: %v", apperrors.ErrInvalidCourseData, err)
	}
	end, err := helpers.ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date: %v", apperrors.ErrInvalidCourseData, err)
	}
	return &models.Course{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// PatchCourseRequest is the payload for a partial course update
type PatchCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=50"`
	Description *string `json:"description" binding:"omitempty,notblank,max=1024"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// ApplyTo merges the supplied fields onto course
func (r *PatchCourseRequest) ApplyTo(course *models.Course) error {
	if r.Name != nil {
		course.Name = *r.Name
	}
	if r.Description != nil {
		course.Description = *r.Description
	}
	if r.StartDate != nil {
		start, err := helpers.ParseDate(*r.StartDate)
		if err != nil {
			return fmt.Errorf("%w: start_date: %v", apperrors.ErrInvalidCourseData, err)
		}
		course.StartDate = start
	}
	if r.EndDate != nil {
		end, err := helpers.ParseDate(*r.EndDate)
		if err != nil {
			return fmt.Errorf("%w: end_date: %v", apperrors.ErrInvalidCourseData, err)
		}
		course.EndDate = end
	}
	return nil
}

// CourseResponse represents a course on the wire
type CourseResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Black Magic"`
	Description string `json:"description" example:"Crucio"`
	StartDate   string `json:"start_date" example:"2025-09-01"`
	EndDate     string `json:"end_date" example:"2025-12-20"`
}

// CourseListItem is a course with its participant count
type CourseListItem struct {
	CourseResponse
	StudentsCount int64 `json:"students_count" example:"3"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   helpers.FormatDate(c.StartDate),
		EndDate:     helpers.FormatDate(c.EndDate),
	}
}

// FromCoursesWithCount converts list rows to their wire form
func FromCoursesWithCount(courses []*models.CourseWithCount) []CourseListItem {
	items := make([]CourseListItem, 0, len(courses))
	for _, c := range courses {
		items = append(items, CourseListItem{
			CourseResponse: FromCourse(&c.Course),
			StudentsCount:  c.StudentsCount,
		})
	}
	return items
}
