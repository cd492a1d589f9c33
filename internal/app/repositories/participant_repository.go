package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/db"
	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/dberrors"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

// ParticipantRepository handles course_participants operations
type ParticipantRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(pool db.Pool) *ParticipantRepository {
	return &ParticipantRepository{
		db: pool,
		sb: statementBuilder(),
	}
}

// Assign enrolls every student in the course inside one transaction.
// The course and all students must exist, otherwise nothing is written.
// Pairs that are already enrolled, including ones inserted concurrently,
// are skipped by ON CONFLICT. It returns the number of new rows.
func (r *ParticipantRepository) Assign(ctx context.Context, courseID int64, studentIDs []int64) (int64, error) {
	ids := uniqueIDs(studentIDs)

	var inserted int64
	err := db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := courseExists(ctx, tx, r.sb, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrCourseNotFound
		}

		if len(ids) == 0 {
			return nil
		}

		found, err := countStudents(ctx, tx, r.sb, ids)
		if err != nil {
			return err
		}
		if found != len(ids) {
			return apperrors.ErrInvalidStudentIDs
		}

		// The ids travel as one bigint[] parameter so the batch size is not
		// bounded by the bind parameter limit.
		pairs := squirrel.Select().
			Column(squirrel.Expr("?::bigint", courseID)).
			Column(squirrel.Expr("unnest(?::bigint[])", ids))
		sql, args, err := r.sb.Insert("course_participants").
			Columns("course_id", "student_id").
			Select(pairs).
			Suffix("ON CONFLICT (course_id, student_id) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build assign query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			// A student deleted between the count and the insert.
			if dberrors.IsForeignKeyError(err) {
				return apperrors.ErrInvalidStudentIDs
			}
			return fmt.Errorf("error assigning students: %w", err)
		}
		inserted = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug().Int64("courseID", courseID).Int("requested", len(ids)).Int64("inserted", inserted).Msg("Students assigned")
	return inserted, nil
}

// Unassign removes the enrollments of the given students from the course.
// Students that are not enrolled are ignored. It returns the number of removed rows.
func (r *ParticipantRepository) Unassign(ctx context.Context, courseID int64, studentIDs []int64) (int64, error) {
	ids := uniqueIDs(studentIDs)

	var removed int64
	err := db.RunInTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		exists, err := courseExists(ctx, tx, r.sb, courseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrCourseNotFound
		}

		if len(ids) == 0 {
			return nil
		}

		sql, args, err := r.sb.Delete("course_participants").
			Where(squirrel.Eq{"course_id": courseID}).
			Where("student_id = ANY(?::bigint[])", ids).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build unassign query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error unassigning students: %w", err)
		}
		removed = cmdTag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ListByCourse returns the course's participants joined with their students
func (r *ParticipantRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.ParticipantDetail, error) {
	sql, args, err := r.sb.Select(
		"cp.id", "cp.course_id", "cp.student_id", "cp.completed",
		"s.first_name", "s.last_name", "s.email",
	).
		From("course_participants cp").
		Join("students s ON s.id = cp.student_id").
		Where(squirrel.Eq{"cp.course_id": courseID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.ParticipantDetail{}
	for rows.Next() {
		p := &models.ParticipantDetail{}
		if err := rows.Scan(&p.ID, &p.CourseID, &p.StudentID, &p.Completed, &p.FirstName, &p.LastName, &p.Email); err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

// SetCompleted updates the completion flag of a single enrollment
func (r *ParticipantRepository) SetCompleted(ctx context.Context, courseID, studentID int64, completed bool) error {
	sql, args, err := r.sb.Update("course_participants").
		Set("completed", completed).
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update participant query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating participant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}
	return nil
}
