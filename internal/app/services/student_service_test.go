package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
)

func TestStudentService_CreateStudentValidation(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		wantErr bool
	}{
		{name: "valid", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: "harry@hogwarts.edu"}},
		{name: "bad email", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: "harry"}, wantErr: true},
		{name: "display name email", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: "Harry <harry@hogwarts.edu>"}, wantErr: true},
		{name: "bare host email", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: "harry@hogwarts"}, wantErr: true},
		{name: "ip literal email", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: "harry@[127.0.0.1]"}, wantErr: true},
		{name: "quoted local part", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: `"harry potter"@hogwarts.edu`}},
		{name: "email too long", student: models.Student{FirstName: "Harry", LastName: "Potter", Email: strings.Repeat("h", 64) + "@" + strings.Repeat("h", 190) + ".edu"}, wantErr: true},
		{name: "blank first name", student: models.Student{FirstName: " ", LastName: "Potter", Email: "harry@hogwarts.edu"}, wantErr: true},
		{name: "last name too long", student: models.Student{FirstName: "Harry", LastName: strings.Repeat("p", 26), Email: "harry@hogwarts.edu"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStudentService(newFakeStudentStore())
			created, err := svc.CreateStudent(context.Background(), &tt.student)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidStudentData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), created.ID)
		})
	}
}

func TestStudentService_PatchStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &models.Student{FirstName: "Harry", LastName: "Potter", Email: "harry@hogwarts.edu"})
	require.NoError(t, err)

	patched, err := svc.PatchStudent(ctx, created.ID, func(s *models.Student) { s.LastName = "Evans" })
	require.NoError(t, err)
	assert.Equal(t, "Harry", patched.FirstName)
	assert.Equal(t, "Evans", patched.LastName)

	_, err = svc.PatchStudent(ctx, 99, func(*models.Student) {})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteStudent(ctx, created.ID), apperrors.ErrStudentNotFound)
}
