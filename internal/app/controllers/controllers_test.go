package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubCourseService struct {
	courses map[int64]*models.Course
	created *models.Course
}

func (s *stubCourseService) CreateCourse(_ context.Context, c *models.Course) (*models.Course, error) {
	if !c.HasValidDateRange() {
		return nil, apperrors.ErrInvalidDateRange
	}
	out := *c
	out.ID = 10
	s.created = &out
	return &out, nil
}

func (s *stubCourseService) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (s *stubCourseService) ListCourses(context.Context) ([]*models.CourseWithCount, error) {
	out := []*models.CourseWithCount{}
	for _, c := range s.courses {
		out = append(out, &models.CourseWithCount{Course: *c, StudentsCount: 2})
	}
	return out, nil
}

func (s *stubCourseService) UpdateCourse(_ context.Context, c *models.Course) (*models.Course, error) {
	if _, ok := s.courses[c.ID]; !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (s *stubCourseService) PatchCourse(ctx context.Context, id int64, apply func(*models.Course) error) (*models.Course, error) {
	c, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *c
	if err := apply(&cp); err != nil {
		return nil, err
	}
	if !cp.HasValidDateRange() {
		return nil, apperrors.ErrInvalidDateRange
	}
	return &cp, nil
}

func (s *stubCourseService) DeleteCourse(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

type stubAssignmentService struct {
	err   error
	calls []string
}

func (s *stubAssignmentService) AssignStudents(_ context.Context, _ int64, _ []int64) error {
	s.calls = append(s.calls, "assign")
	return s.err
}

func (s *stubAssignmentService) UnassignStudents(_ context.Context, _ int64, _ []int64) error {
	s.calls = append(s.calls, "unassign")
	return s.err
}

func (s *stubAssignmentService) ListParticipants(context.Context, int64) ([]*models.ParticipantDetail, error) {
	return []*models.ParticipantDetail{{
		CourseParticipant: models.CourseParticipant{StudentID: 1, Completed: true},
		FirstName:         "Harry",
		LastName:          "Potter",
	}}, s.err
}

func (s *stubAssignmentService) SetCompleted(context.Context, int64, int64, bool) error {
	return s.err
}

type stubReportService struct{}

func (stubReportService) StudentReportCSV(context.Context) ([]byte, error) {
	return []byte("full_name,courses,completed_courses\ntest_0 test_0,2,0\n"), nil
}

func (stubReportService) WriteStudentReport(context.Context, io.Writer) error {
	return errors.New("not used")
}

func newCourse(id int64) *models.Course {
	return &models.Course{
		ID:          id,
		Name:        "Black Magic",
		Description: "Crucio",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func setupRouter(courses *stubCourseService, assignments *stubAssignmentService) *gin.Engine {
	router := gin.New()
	cc := NewCourseController(courses)
	ac := NewAssignmentController(assignments)
	rc := NewReportController(stubReportService{})

	router.GET("/courses", cc.ListCourses)
	router.POST("/courses", cc.CreateCourse)
	router.GET("/courses/:id", cc.GetCourse)
	router.PUT("/courses/:id", cc.UpdateCourse)
	router.PATCH("/courses/:id", cc.PatchCourse)
	router.DELETE("/courses/:id", cc.DeleteCourse)
	router.GET("/courses/:id/participants", ac.ListParticipants)
	router.PATCH("/courses/:id/participants/:studentId", ac.UpdateParticipant)
	router.POST("/course_assignment/assign", ac.Assign)
	router.POST("/course_assignment/unassign", ac.Unassign)
	router.GET("/report", rc.StudentReport)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCourseController_List(t *testing.T) {
	router := setupRouter(&stubCourseService{courses: map[int64]*models.Course{1: newCourse(1)}}, &stubAssignmentService{})

	w := doRequest(router, http.MethodGet, "/courses", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	decodeData(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Black Magic", items[0]["name"])
	assert.Equal(t, "2025-01-01", items[0]["start_date"])
	assert.EqualValues(t, 2, items[0]["students_count"])
}

func TestCourseController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"name":"Black Magic","description":"Crucio","start_date":"2025-01-01","end_date":"2025-01-02"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "end before start",
			body:       `{"name":"Black Magic","description":"Crucio","start_date":"2025-01-02","end_date":"2025-01-01"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeInvalidDateRange),
		},
		{
			name:       "name too long",
			body:       `{"name":"` + strings.Repeat("n", 51) + `","description":"Crucio","start_date":"2025-01-01","end_date":"2025-01-02"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeValidationFailed),
		},
		{
			name:       "bad date format",
			body:       `{"name":"Black Magic","description":"Crucio","start_date":"2025/01/01","end_date":"2025-01-02"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeValidationFailed),
		},
		{
			name:       "missing fields",
			body:       `{"name":"Black Magic"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   string(dto.ErrorCodeValidationFailed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses := &stubCourseService{courses: map[int64]*models.Course{}}
			router := setupRouter(courses, &stubAssignmentService{})

			w := doRequest(router, http.MethodPost, "/courses", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, string(decodeError(t, w).Error.Code))
				return
			}
			var created dto.CourseResponse
			decodeData(t, w, &created)
			assert.Equal(t, int64(10), created.ID)
			assert.Equal(t, "2025-01-02", created.EndDate)
		})
	}
}

func TestCourseController_DetailUpdateDelete(t *testing.T) {
	courses := &stubCourseService{courses: map[int64]*models.Course{1: newCourse(1)}}
	router := setupRouter(courses, &stubAssignmentService{})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/courses/1", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/courses/2", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodGet, "/courses/abc", "").Code)

	w := doRequest(router, http.MethodPatch, "/courses/1", `{"description":"Imperio"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var patched dto.CourseResponse
	decodeData(t, w, &patched)
	assert.Equal(t, "Imperio", patched.Description)
	assert.Equal(t, "Black Magic", patched.Name)

	w = doRequest(router, http.MethodPatch, "/courses/1", `{"start_date":"2025-02-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/courses/1", `{"name":"White Magic","description":"Lumos","start_date":"2025-03-01","end_date":"2025-03-02"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/courses/7", `{"name":"White Magic","description":"Lumos","start_date":"2025-03-01","end_date":"2025-03-02"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/courses/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, http.StatusNotFound, doRequest(router, http.MethodDelete, "/courses/1", "").Code)
}

func TestAssignmentController(t *testing.T) {
	t.Run("assign and unassign", func(t *testing.T) {
		assignments := &stubAssignmentService{}
		router := setupRouter(&stubCourseService{}, assignments)

		w := doRequest(router, http.MethodPost, "/course_assignment/assign", `{"course":1,"students":[1,2]}`)
		require.Equal(t, http.StatusOK, w.Code)
		var msg dto.MessageResponse
		decodeData(t, w, &msg)
		assert.Equal(t, "Assigned", msg.Message)

		w = doRequest(router, http.MethodPost, "/course_assignment/unassign", `{"course":1,"students":[]}`)
		require.Equal(t, http.StatusOK, w.Code)
		decodeData(t, w, &msg)
		assert.Equal(t, "Unassigned", msg.Message)

		assert.Equal(t, []string{"assign", "unassign"}, assignments.calls)
	})

	t.Run("invalid students", func(t *testing.T) {
		router := setupRouter(&stubCourseService{}, &stubAssignmentService{err: apperrors.ErrInvalidStudentIDs})

		w := doRequest(router, http.MethodPost, "/course_assignment/assign", `{"course":1,"students":[1,99]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidStudents, decodeError(t, w).Error.Code)
	})

	t.Run("malformed payload never reaches the service", func(t *testing.T) {
		assignments := &stubAssignmentService{}
		router := setupRouter(&stubCourseService{}, assignments)

		for _, body := range []string{`{"students":[1]}`, `{"course":1}`, `{"course":1,"students":[0]}`, `{"course":"x","students":[1]}`} {
			w := doRequest(router, http.MethodPost, "/course_assignment/assign", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
		assert.Empty(t, assignments.calls)
	})

	t.Run("participants", func(t *testing.T) {
		router := setupRouter(&stubCourseService{}, &stubAssignmentService{})

		w := doRequest(router, http.MethodGet, "/courses/1/participants", "")
		require.Equal(t, http.StatusOK, w.Code)
		var participants []dto.ParticipantResponse
		decodeData(t, w, &participants)
		require.Len(t, participants, 1)
		assert.Equal(t, "Harry Potter", participants[0].FullName)
		assert.True(t, participants[0].Completed)

		w = doRequest(router, http.MethodPatch, "/courses/1/participants/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(router, http.MethodPatch, "/courses/1/participants/1", `{"completed":true}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("participant not enrolled", func(t *testing.T) {
		router := setupRouter(&stubCourseService{}, &stubAssignmentService{err: apperrors.ErrParticipantNotFound})

		w := doRequest(router, http.MethodPatch, "/courses/1/participants/5", `{"completed":false}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportController(t *testing.T) {
	router := setupRouter(&stubCourseService{}, &stubAssignmentService{})

	w := doRequest(router, http.MethodGet, "/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="report.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "full_name,courses,completed_courses\n"))
}
