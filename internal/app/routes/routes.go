package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/controllers"
	"github.com/yigit/coursedesk/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Course     *controllers.CourseController
	Student    *controllers.StudentController
	Assignment *controllers.AssignmentController
	Report     *controllers.ReportController
	Auth       *controllers.AuthController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes. A nil authMiddleware leaves
// the API open and skips the token endpoint.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	handle(v1, http.MethodGet, "/health", c.Health.Health)

	api := v1.Group("")
	if authMiddleware != nil {
		handle(v1, http.MethodPost, "/auth/token", c.Auth.Token)
		api.Use(authMiddleware.JWTAuth())
	}

	courses := api.Group("/courses")
	{
		handle(courses, http.MethodGet, "", c.Course.ListCourses)
		handle(courses, http.MethodPost, "", c.Course.CreateCourse)
		handle(courses, http.MethodGet, "/:id", c.Course.GetCourse)
		handle(courses, http.MethodPut, "/:id", c.Course.UpdateCourse)
		handle(courses, http.MethodPatch, "/:id", c.Course.PatchCourse)
		handle(courses, http.MethodDelete, "/:id", c.Course.DeleteCourse)
		handle(courses, http.MethodGet, "/:id/participants", c.Assignment.ListParticipants)
		handle(courses, http.MethodPatch, "/:id/participants/:studentId", c.Assignment.UpdateParticipant)
	}

	assignment := api.Group("/course_assignment")
	{
		handle(assignment, http.MethodPost, "/assign", c.Assignment.Assign)
		handle(assignment, http.MethodPost, "/unassign", c.Assignment.Unassign)
	}

	handle(api, http.MethodGet, "/report", c.Report.StudentReport)

	students := api.Group("/students")
	{
		handle(students, http.MethodGet, "", c.Student.ListStudents)
		handle(students, http.MethodPost, "", c.Student.CreateStudent)
		handle(students, http.MethodGet, "/:id", c.Student.GetStudent)
		handle(students, http.MethodPut, "/:id", c.Student.UpdateStudent)
		handle(students, http.MethodPatch, "/:id", c.Student.PatchStudent)
		handle(students, http.MethodDelete, "/:id", c.Student.DeleteStudent)
	}
}

// handle registers the route with and without a trailing slash, so clients
// that do not follow redirects can use either form.
func handle(group *gin.RouterGroup, method, path string, handler gin.HandlerFunc) {
	group.Handle(method, path, handler)
	group.Handle(method, path+"/", handler)
}
