package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses and the
// course_students junction.
type CourseRepository struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool, lgr zerolog.Logger) *CourseRepository {
	return &CourseRepository{db: db, logger: lgr}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, description, study_field)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Description, course.StudyField).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by primary key.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, description, study_field
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID, &course.Name, &course.Description, &course.StudyField,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// EnrollStudent records an enrollment. The duplicate check and the junction
// insert run in one transaction, so a conflict leaves nothing behind.
func (r *CourseRepository) EnrollStudent(ctx context.Context, courseID, studentID int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM course_students WHERE course_id = $1 AND student_id = $2)
		`, courseID, studentID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking enrollment: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO course_students (course_id, student_id)
			VALUES ($1, $2)
		`, courseID, studentID)
		if err != nil {
			return fmt.Errorf("error enrolling student: %w", err)
		}
		return nil
	})
}
