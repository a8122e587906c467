package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/query"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// departmentStore is the persistence surface the department service needs.
type departmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
}

// DepartmentService handles department-related operations
type DepartmentService struct {
	departments departmentStore
	logger      zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments departmentStore, lgr zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, logger: lgr}
}

var departmentOrdering = map[string]query.LessFunc[*models.Department]{
	"name":        func(a, b *models.Department) bool { return a.Name < b.Name },
	"description": func(a, b *models.Department) bool { return a.Description < b.Description },
}

// List returns one page of departments. Search covers name and description;
// the default order is ascending name. The manager, when present, is
// flattened to a summary.
func (s *DepartmentService) List(ctx context.Context, spec query.Spec) (*dto.DepartmentListResponse, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load departments")
		return nil, fmt.Errorf("error listing departments: %w", err)
	}

	result, err := query.Run(ctx, departments, spec, query.Definition[*models.Department]{
		SearchFields: func(d *models.Department) []string {
			return []string{d.Name, d.Description}
		},
		Less:        departmentOrdering,
		DefaultLess: departmentOrdering["name"],
	})
	if err != nil {
		return nil, err
	}

	response := &dto.DepartmentListResponse{
		Departments: make([]dto.DepartmentResponse, 0, len(result.Items)),
		TotalCount:  result.TotalCount,
	}
	for _, d := range result.Items {
		response.Departments = append(response.Departments, dto.DepartmentResponse{
			ID:             d.ID,
			Name:           d.Name,
			Description:    d.Description,
			DepartmentType: string(d.DepartmentType),
			Manager:        managerSummary(d.Manager),
		})
	}
	return response, nil
}

// Create creates a new department. A duplicate name is a conflict.
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := models.NewDepartment(req.Name, req.Description, models.DepartmentType(req.DepartmentType))
	if err != nil {
		return nil, err
	}

	if err := s.departments.Create(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDepartmentAlreadyExists, department.Name)
		}
		s.logger.Error().Err(err).Str("name", department.Name).Msg("Failed to create department")
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return &dto.DepartmentResponse{
		ID:             department.ID,
		Name:           department.Name,
		Description:    department.Description,
		DepartmentType: string(department.DepartmentType),
	}, nil
}

// managerSummary flattens an employee record to the listing projection.
// A department without a manager yields nil, which serializes as an absent
// field rather than an empty object.
func managerSummary(manager *models.Employee) *dto.ManagerSummary {
	if manager == nil {
		return nil
	}
	summary := &dto.ManagerSummary{ID: manager.ID, Title: manager.Title}
	if manager.User != nil {
		summary.FirstName = manager.User.FirstName
		summary.LastName = manager.User.LastName
		summary.Email = manager.User.Email
	}
	return summary
}
