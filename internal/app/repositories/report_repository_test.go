package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_StudentCourseCounts(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT s.first_name \|\| ' ' \|\| s.last_name AS full_name, COUNT\(cp.id\) AS courses, COUNT\(cp.id\) FILTER \(WHERE cp.completed\) AS completed_courses FROM students s LEFT JOIN course_participants cp ON cp.student_id = s.id GROUP BY s.id ORDER BY s.id ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"full_name", "courses", "completed_courses"}).
			AddRow("test_0 test_0", int64(2), int64(0)).
			AddRow("test_1 test_1", int64(2), int64(2)).
			AddRow("test_2 test_2", int64(0), int64(0)))

	rows, err := NewReportRepository(mock).StudentCourseCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "test_1 test_1", rows[1].FullName)
	assert.Equal(t, int64(2), rows[1].CompletedCourses)
	assert.Equal(t, int64(0), rows[2].Courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}
