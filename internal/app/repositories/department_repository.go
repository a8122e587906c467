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
	"github.com/mverbeke/campushub/internal/pkg/helpers"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool, lgr zerolog.Logger) *DepartmentRepository {
	return &DepartmentRepository{db: db, logger: lgr}
}

// Create inserts a new department, rejecting duplicate names. The uniqueness
// check and the insert run in one transaction.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)
		`, department.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking department uniqueness: %w", err)
		}
		if exists {
			return apperrors.ErrDepartmentAlreadyExists
		}

		return tx.QueryRow(ctx, `
			INSERT INTO departments (name, description, department_type, manager_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, department.Name, department.Description, department.DepartmentType,
			department.ManagerID,
		).Scan(&department.ID)
	})
}

// GetAll retrieves every department, each with its manager (and the manager's
// user record) when one is set.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT d.id, d.name, d.description, d.department_type, d.manager_id,
		       e.id, e.title,
		       u.id, u.first_name, u.last_name, u.email
		FROM departments d
		LEFT JOIN employees e ON d.manager_id = e.id
		LEFT JOIN users u ON e.user_id = u.id
		ORDER BY d.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		var empID *int64
		var empTitle *string
		var userID *int64
		var firstName, lastName, email *string

		if err := rows.Scan(
			&department.ID, &department.Name, &department.Description,
			&department.DepartmentType, &department.ManagerID,
			&empID, &empTitle,
			&userID, &firstName, &lastName, &email,
		); err != nil {
			return nil, err
		}

		if empID != nil {
			manager := &models.Employee{ID: *empID}
			if empTitle != nil {
				manager.Title = *empTitle
			}
			if userID != nil {
				manager.UserID = *userID
				manager.User = &models.User{
					ID:        *userID,
					FirstName: helpers.StringValue(firstName),
					LastName:  helpers.StringValue(lastName),
					Email:     helpers.StringValue(email),
					Role:      models.RoleEmployee,
				}
			}
			department.Manager = manager
		}

		departments = append(departments, &department)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by primary key.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, description, department_type, manager_id
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID, &department.Name, &department.Description,
		&department.DepartmentType, &department.ManagerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// AddMember records a user's department membership. A duplicate membership
// is a conflict; check and insert share a transaction.
func (r *DepartmentRepository) AddMember(ctx context.Context, departmentID, userID int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM department_members WHERE department_id = $1 AND user_id = $2)
		`, departmentID, userID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking membership: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyMember
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO department_members (department_id, user_id)
			VALUES ($1, $2)
		`, departmentID, userID)
		if err != nil {
			return fmt.Errorf("error adding member: %w", err)
		}
		return nil
	})
}
