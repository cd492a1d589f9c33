package services

import (
	"context"
	"slices"

	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
	updates int
}

func newFakeCourseStore(courses ...*models.Course) *fakeCourseStore {
	f := &fakeCourseStore{courses: map[int64]*models.Course{}}
	for _, c := range courses {
		cp := *c
		f.courses[c.ID] = &cp
		f.nextID = max(f.nextID, c.ID)
	}
	return f
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) (int64, error) {
	f.nextID++
	cp := *course
	cp.ID = f.nextID
	f.courses[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseStore) ListWithStudentCount(context.Context) ([]*models.CourseWithCount, error) {
	out := []*models.CourseWithCount{}
	for _, c := range f.courses {
		out = append(out, &models.CourseWithCount{Course: *c})
	}
	slices.SortFunc(out, func(a, b *models.CourseWithCount) int { return int(a.ID - b.ID) })
	return out, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.updates++
	cp := *course
	f.courses[course.ID] = &cp
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) (int64, error) {
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	f.students[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentStore) List(context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *models.Student) error {
	if _, ok := f.students[s.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	cp := *s
	f.students[s.ID] = &cp
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type assignCall struct {
	courseID int64
	students []int64
}

type fakeParticipantStore struct {
	assignErr   error
	assigned    []assignCall
	unassigned  []assignCall
	details     []*models.ParticipantDetail
	completeErr error
}

func (f *fakeParticipantStore) Assign(_ context.Context, courseID int64, ids []int64) (int64, error) {
	if f.assignErr != nil {
		return 0, f.assignErr
	}
	f.assigned = append(f.assigned, assignCall{courseID, ids})
	return int64(len(ids)), nil
}

func (f *fakeParticipantStore) Unassign(_ context.Context, courseID int64, ids []int64) (int64, error) {
	if f.assignErr != nil {
		return 0, f.assignErr
	}
	f.unassigned = append(f.unassigned, assignCall{courseID, ids})
	return int64(len(ids)), nil
}

func (f *fakeParticipantStore) ListByCourse(context.Context, int64) ([]*models.ParticipantDetail, error) {
	return f.details, nil
}

func (f *fakeParticipantStore) SetCompleted(context.Context, int64, int64, bool) error {
	return f.completeErr
}

type fakeReportStore struct {
	rows []*models.StudentReportRow
	err  error
}

func (f *fakeReportStore) StudentCourseCounts(context.Context) ([]*models.StudentReportRow, error) {
	return f.rows, f.err
}
