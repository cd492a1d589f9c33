// Package seed loads demo data into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursedesk/internal/app/models"
	appRepos "github.com/yigit/coursedesk/internal/app/repositories"
)

// DemoStudents is the number of students CreateDemoData inserts.
const DemoStudents = 3

// CreateDemoData inserts a few courses, students and enrollments. It does
// nothing when students already exist, so it is safe to run on every start.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.StudentRepository.List(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("students", len(existing)).Msg("Demo data skipped, database is not empty")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")
	var finalErr error

	start := time.Now().UTC().Truncate(24 * time.Hour)
	courseIDs := make([]int64, 0, 2)
	for i, name := range []string{"Black Magic", "White Magic"} {
		course := &appModels.Course{
			Name:        name,
			Description: fmt.Sprintf("Demo course %d", i+1),
			StartDate:   start,
			EndDate:     start.AddDate(0, 3, 0),
		}
		id, err := repos.CourseRepository.Create(ctx, course)
		if err != nil {
			lgr.Error().Err(err).Str("course", name).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		courseIDs = append(courseIDs, id)
	}

	studentIDs := make([]int64, 0, DemoStudents)
	for i := 0; i < DemoStudents; i++ {
		student := &appModels.Student{
			FirstName: fmt.Sprintf("test_%d", i),
			LastName:  fmt.Sprintf("test_%d", i),
			Email:     fmt.Sprintf("test_%d@example.com", i),
		}
		id, err := repos.StudentRepository.Create(ctx, student)
		if err != nil {
			lgr.Error().Err(err).Int("index", i).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		studentIDs = append(studentIDs, id)
	}

	// The first two students take every course; the second one completes them.
	if len(studentIDs) >= 2 {
		for _, courseID := range courseIDs {
			if _, err := repos.ParticipantRepository.Assign(ctx, courseID, studentIDs[:2]); err != nil {
				finalErr = errors.Join(finalErr, err)
				continue
			}
			if err := repos.ParticipantRepository.SetCompleted(ctx, courseID, studentIDs[1], true); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Int("courses", len(courseIDs)).Int("students", len(studentIDs)).Msg("Demo data created")
	}
	return finalErr
}
