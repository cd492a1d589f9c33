package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrderedAndAnnotated(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	prev := ""
	for _, e := range entries {
		name := e.Name()
		assert.True(t, strings.HasSuffix(name, ".sql"), name)
		assert.Greater(t, name, prev)
		prev = name

		body, err := fs.ReadFile(migrations, migrationsDir+"/"+name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestParticipantMigrationDeclaresUniquePairAndCascade(t *testing.T) {
	body, err := fs.ReadFile(migrations, migrationsDir+"/00002_create_course_participants.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "UNIQUE (course_id, student_id)")
	assert.Equal(t, 2, strings.Count(sql, "ON DELETE CASCADE"))
}
