// Package services holds the business rules between the HTTP controllers and
// the repositories.
package services

import (
	"github.com/yigit/coursedesk/internal/app/repositories"
	"github.com/yigit/coursedesk/internal/pkg/auth"
)

// Services groups every service the router needs
type Services struct {
	CourseService     CourseService
	StudentService    StudentService
	AssignmentService AssignmentService
	ReportService     ReportService
	AuthService       AuthService
}

// NewServices wires the services on top of the repositories. jwtService may be
// nil when authentication is disabled.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, admin AdminCredentials) *Services {
	return &Services{
		CourseService:     NewCourseService(repos.CourseRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		AssignmentService: NewAssignmentService(repos.ParticipantRepository, repos.CourseRepository),
		ReportService:     NewReportService(repos.ReportRepository),
		AuthService:       NewAuthService(admin, jwtService),
	}
}
