package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/auth"
	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/query"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// deadlineStore is the persistence surface the deadline service needs.
type deadlineStore interface {
	GetAssignmentsForStudent(ctx context.Context, studentID int64) ([]*models.StudentDeadline, error)
	GetAssignment(ctx context.Context, studentID, deadlineID int64) (*models.StudentDeadline, error)
	SetAssignmentCompletion(ctx context.Context, assignmentID int64, isCompleted bool) error
}

// identityResolver maps the request principal to the acting student.
type identityResolver interface {
	ResolveStudent(ctx context.Context, p auth.Principal) (*models.Student, error)
}

// DeadlineService handles a student's view of their assigned deadlines.
type DeadlineService struct {
	identity  identityResolver
	deadlines deadlineStore
	logger    zerolog.Logger
}

// NewDeadlineService creates a new deadline service instance
func NewDeadlineService(identity identityResolver, deadlines deadlineStore, lgr zerolog.Logger) *DeadlineService {
	return &DeadlineService{
		identity:  identity,
		deadlines: deadlines,
		logger:    lgr,
	}
}

// Ordering comparators for the deadline listing. The completion flag is
// deliberately absent: clients filter on it themselves.
var deadlineOrdering = map[string]query.LessFunc[*models.StudentDeadline]{
	"title":     func(a, b *models.StudentDeadline) bool { return a.Deadline.Title < b.Deadline.Title },
	"duedate":   func(a, b *models.StudentDeadline) bool { return a.Deadline.DueDate.Before(b.Deadline.DueDate) },
	"startdate": func(a, b *models.StudentDeadline) bool { return a.Deadline.StartDate.Before(b.Deadline.StartDate) },
	"course":    func(a, b *models.StudentDeadline) bool { return a.Deadline.CourseName() < b.Deadline.CourseName() },
}

// ListForStudent returns one page of the acting student's deadlines. The
// candidate set is the student's own assignments; search covers title,
// description and the owning course's name; the default order is ascending
// due date.
func (s *DeadlineService) ListForStudent(ctx context.Context, principal auth.Principal, spec query.Spec) (*dto.DeadlineListResponse, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	student, err := s.identity.ResolveStudent(ctx, principal)
	if err != nil {
		return nil, err
	}

	assignments, err := s.deadlines.GetAssignmentsForStudent(ctx, student.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to load assignments")
		return nil, fmt.Errorf("error listing deadlines: %w", err)
	}

	result, err := query.Run(ctx, assignments, spec, query.Definition[*models.StudentDeadline]{
		SearchFields: func(sd *models.StudentDeadline) []string {
			return []string{sd.Deadline.Title, sd.Deadline.Description, sd.Deadline.CourseName()}
		},
		Less:        deadlineOrdering,
		DefaultLess: deadlineOrdering["duedate"],
	})
	if err != nil {
		return nil, err
	}

	response := &dto.DeadlineListResponse{
		Deadlines:  make([]dto.DeadlineResponse, 0, len(result.Items)),
		TotalCount: result.TotalCount,
	}
	for _, sd := range result.Items {
		response.Deadlines = append(response.Deadlines, dto.DeadlineResponse{
			ID:          sd.Deadline.ID,
			Title:       sd.Deadline.Title,
			Description: sd.Deadline.Description,
			IsCompleted: sd.IsCompleted,
			DueDate:     sd.Deadline.DueDate,
			StartDate:   sd.Deadline.StartDate,
			Course:      sd.Deadline.CourseName(),
		})
	}
	return response, nil
}

// ToggleCompletion sets the completion flag on the acting student's
// assignment for the given deadline. Toggling a deadline that was never
// assigned to the student is NotFound. Setting the flag to its current value
// succeeds without touching storage.
func (s *DeadlineService) ToggleCompletion(ctx context.Context, principal auth.Principal, deadlineID int64, isCompleted bool) error {
	student, err := s.identity.ResolveStudent(ctx, principal)
	if err != nil {
		return err
	}

	assignment, err := s.deadlines.GetAssignment(ctx, student.ID, deadlineID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return fmt.Errorf("%w: deadline %d", apperrors.ErrAssignmentNotFound, deadlineID)
		}
		s.logger.Error().Err(err).
			Int64("studentID", student.ID).
			Int64("deadlineID", deadlineID).
			Msg("Failed to load assignment")
		return fmt.Errorf("error loading assignment: %w", err)
	}

	if assignment.IsCompleted == isCompleted {
		return nil
	}

	if err := s.deadlines.SetAssignmentCompletion(ctx, assignment.ID, isCompleted); err != nil {
		s.logger.Error().Err(err).Int64("assignmentID", assignment.ID).Msg("Failed to update completion")
		return fmt.Errorf("error updating completion: %w", err)
	}
	return nil
}
