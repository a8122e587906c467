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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool, lgr zerolog.Logger) *StudentRepository {
	return &StudentRepository{db: db, logger: lgr}
}

const selectStudentColumns = `
	s.id, s.user_id, s.student_number,
	u.id, u.account_id, u.first_name, u.last_name, u.email, u.role, u.created_at, u.updated_at
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var user models.User
	err := row.Scan(
		&student.ID, &student.UserID, &student.StudentNumber,
		&user.ID, &user.AccountID, &user.FirstName, &user.LastName,
		&user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	student.User = &user
	return &student, nil
}

// GetStudentByAccountID retrieves the student linked to an external account
// identifier. This backs the identity resolution path.
func (r *StudentRepository) GetStudentByAccountID(ctx context.Context, accountID string) (*models.Student, error) {
	query := `
		SELECT ` + selectStudentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE u.account_id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		r.logger.Error().Err(err).Str("accountID", accountID).Msg("Error retrieving student by account")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetStudentByID retrieves a student by primary key.
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + selectStudentColumns + `
		FROM students s
		JOIN users u ON s.user_id = u.id
		WHERE s.id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		r.logger.Error().Err(err).Int64("studentID", id).Msg("Error retrieving student by ID")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// CreateStudent inserts the user row and the student row in one transaction.
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	if student.User == nil {
		return fmt.Errorf("%w: student requires a user", apperrors.ErrValidationFailed)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (account_id, first_name, last_name, email, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`, student.User.AccountID, student.User.FirstName, student.User.LastName,
			student.User.Email, student.User.Role,
		).Scan(&student.User.ID, &student.User.CreatedAt, &student.User.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		student.UserID = student.User.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO students (user_id, student_number)
			VALUES ($1, $2)
			RETURNING id
		`, student.UserID, student.StudentNumber).Scan(&student.ID)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}
		return nil
	})
}
