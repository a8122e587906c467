package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
	"github.com/mverbeke/campushub/internal/pkg/helpers"
)

// DeadlineRepository handles database operations for deadlines and the
// student_deadlines junction.
type DeadlineRepository struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewDeadlineRepository creates a new deadline repository
func NewDeadlineRepository(db *pgxpool.Pool, lgr zerolog.Logger) *DeadlineRepository {
	return &DeadlineRepository{db: db, logger: lgr}
}

// Select builder for assignment rows joined with their deadline and course.
func (r *DeadlineRepository) selectAssignmentQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"sd.id", "sd.student_id", "sd.deadline_id", "sd.is_completed",
		"d.id", "d.title", "d.description", "d.due_date", "d.start_date", "d.course_id",
		"c.id", "c.name",
	).From("student_deadlines sd").
		Join("deadlines d ON sd.deadline_id = d.id").
		LeftJoin("courses c ON d.course_id = c.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAssignment(row pgx.Row) (*models.StudentDeadline, error) {
	var sd models.StudentDeadline
	var deadline models.Deadline
	var courseID, courseRefID *int64
	var courseName *string

	err := row.Scan(
		&sd.ID, &sd.StudentID, &sd.DeadlineID, &sd.IsCompleted,
		&deadline.ID, &deadline.Title, &deadline.Description,
		&deadline.DueDate, &deadline.StartDate, &courseRefID,
		&courseID, &courseName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}

	deadline.CourseID = courseRefID
	if courseID != nil {
		deadline.Course = &models.Course{ID: *courseID, Name: helpers.StringValue(courseName)}
	}
	sd.Deadline = &deadline
	return &sd, nil
}

// GetAssignmentsForStudent retrieves every junction row of one student, each
// carrying its deadline and the owning course when there is one. This is the
// candidate set for the student's deadline listing.
func (r *DeadlineRepository) GetAssignmentsForStudent(ctx context.Context, studentID int64) ([]*models.StudentDeadline, error) {
	sqlStr, args, err := r.selectAssignmentQuery().
		Where(squirrel.Eq{"sd.student_id": studentID}).
		OrderBy("sd.id").
		ToSql()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building assignment list SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.StudentDeadline
	for rows.Next() {
		sd, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetAssignment retrieves the junction row for one student/deadline pair.
func (r *DeadlineRepository) GetAssignment(ctx context.Context, studentID, deadlineID int64) (*models.StudentDeadline, error) {
	sqlStr, args, err := r.selectAssignmentQuery().
		Where(squirrel.Eq{"sd.student_id": studentID, "sd.deadline_id": deadlineID}).
		ToSql()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building assignment lookup SQL")
		return nil, err
	}

	return scanAssignment(r.db.QueryRow(ctx, sqlStr, args...))
}

// SetAssignmentCompletion updates one junction row's completion flag.
func (r *DeadlineRepository) SetAssignmentCompletion(ctx context.Context, assignmentID int64, isCompleted bool) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE student_deadlines SET is_completed = $1 WHERE id = $2
	`, isCompleted, assignmentID)
	if err != nil {
		return fmt.Errorf("error updating assignment completion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// GetDeadlineByID retrieves a deadline by primary key.
func (r *DeadlineRepository) GetDeadlineByID(ctx context.Context, id int64) (*models.Deadline, error) {
	query := `
		SELECT id, title, description, due_date, start_date, course_id
		FROM deadlines
		WHERE id = $1
	`

	var deadline models.Deadline
	err := r.db.QueryRow(ctx, query, id).Scan(
		&deadline.ID, &deadline.Title, &deadline.Description,
		&deadline.DueDate, &deadline.StartDate, &deadline.CourseID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDeadlineNotFound
		}
		return nil, fmt.Errorf("error retrieving deadline: %w", err)
	}
	return &deadline, nil
}

// CreateDeadline inserts a new deadline.
func (r *DeadlineRepository) CreateDeadline(ctx context.Context, deadline *models.Deadline) error {
	sqlStr, args, err := squirrel.Insert("deadlines").
		Columns("title", "description", "due_date", "start_date", "course_id").
		Values(deadline.Title, deadline.Description, deadline.DueDate, deadline.StartDate, deadline.CourseID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building create deadline SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&deadline.ID); err != nil {
		return fmt.Errorf("error creating deadline: %w", err)
	}
	return nil
}

// AssignStudent creates the junction row for a student/deadline pair. The
// duplicate check and the insert run in one transaction so both sides of the
// link appear together or not at all.
func (r *DeadlineRepository) AssignStudent(ctx context.Context, deadlineID, studentID int64) (*models.StudentDeadline, error) {
	var sd models.StudentDeadline

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM student_deadlines WHERE student_id = $1 AND deadline_id = $2)
		`, studentID, deadlineID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking existing assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyAssigned
		}

		return tx.QueryRow(ctx, `
			INSERT INTO student_deadlines (student_id, deadline_id, is_completed)
			VALUES ($1, $2, false)
			RETURNING id, student_id, deadline_id, is_completed
		`, studentID, deadlineID).Scan(&sd.ID, &sd.StudentID, &sd.DeadlineID, &sd.IsCompleted)
	})
	if err != nil {
		return nil, err
	}
	return &sd, nil
}

// AttachToCourse links a deadline to a course. A deadline already owned by a
// course cannot be re-attached.
func (r *DeadlineRepository) AttachToCourse(ctx context.Context, deadlineID, courseID int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var current *int64
		err := tx.QueryRow(ctx, `SELECT course_id FROM deadlines WHERE id = $1`, deadlineID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrDeadlineNotFound
			}
			return fmt.Errorf("error checking deadline: %w", err)
		}
		if current != nil {
			return apperrors.ErrDeadlineAttached
		}

		_, err = tx.Exec(ctx, `UPDATE deadlines SET course_id = $1 WHERE id = $2`, courseID, deadlineID)
		if err != nil {
			return fmt.Errorf("error attaching deadline: %w", err)
		}
		return nil
	})
}
