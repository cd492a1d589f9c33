package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/app/services"
	"github.com/yigit/coursedesk/internal/middleware"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

// AssignmentController handles enrollments
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// Assign enrolls students in a course
// @Summary Assign students to a course
// @Description All students must exist or nothing is written. Already enrolled students are skipped.
// @Tags course_assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentAssignmentRequest true "Course and students"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Assigned"
// @Failure 400 {object} dto.ErrorResponse "Unknown course or student IDs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course_assignment/assign [post]
func (c *AssignmentController) Assign(ctx *gin.Context) {
	var req dto.StudentAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.AssignStudents(ctx.Request.Context(), req.Course, req.Students); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "Assigned"}))
}

// Unassign removes students from a course
// @Summary Unassign students from a course
// @Description Students that are not enrolled are ignored
// @Tags course_assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentAssignmentRequest true "Course and students"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Unassigned"
// @Failure 400 {object} dto.ErrorResponse "Unknown course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /course_assignment/unassign [post]
func (c *AssignmentController) Unassign(ctx *gin.Context) {
	var req dto.StudentAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.UnassignStudents(ctx.Request.Context(), req.Course, req.Students); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "Unassigned"}))
}

// ListParticipants lists the students enrolled in a course
// @Summary List course participants
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ParticipantResponse} "Participants retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/participants [get]
func (c *AssignmentController) ListParticipants(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", apperrors.ErrCourseNotFound)
	if !ok {
		return
	}

	participants, err := c.assignmentService.ListParticipants(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromParticipants(participants)))
}

// UpdateParticipant sets the completed flag of an enrollment
// @Summary Mark a course as completed for a student
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateParticipantRequest true "Completion flag"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student is not assigned to this course"
// @Router /courses/{id}/participants/{studentId} [patch]
func (c *AssignmentController) UpdateParticipant(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id", apperrors.ErrParticipantNotFound)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", apperrors.ErrParticipantNotFound)
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.SetCompleted(ctx.Request.Context(), courseID, studentID, *req.Completed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "Updated"}))
}
