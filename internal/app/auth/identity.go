package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// Principal is the request identity as established by the transport layer.
// Subject carries the external account identifier claim; it is empty when the
// token carried no such claim.
type Principal struct {
	Authenticated bool
	Subject       string
}

// Anonymous is the principal of an unauthenticated request.
var Anonymous = Principal{}

// StudentFinder looks up the domain student linked to an external account.
type StudentFinder interface {
	GetStudentByAccountID(ctx context.Context, accountID string) (*models.Student, error)
}

// IdentityService resolves a request principal to the acting student. The
// three failure modes are distinct on purpose: no authentication at all, an
// authenticated token missing the subject claim, and a subject with no
// student record behind it.
type IdentityService struct {
	students StudentFinder
	logger   zerolog.Logger
}

// NewIdentityService creates an IdentityService.
func NewIdentityService(students StudentFinder, lgr zerolog.Logger) *IdentityService {
	return &IdentityService{students: students, logger: lgr}
}

// ResolveStudent maps the principal to a student record.
//   - unauthenticated principal: ErrUnauthorized
//   - authenticated but no subject claim: ErrIdentityMissing (a conflict,
//     the token is broken rather than absent)
//   - subject with no matching student: ErrStudentNotFound
func (s *IdentityService) ResolveStudent(ctx context.Context, p Principal) (*models.Student, error) {
	if !p.Authenticated {
		return nil, apperrors.ErrUnauthorized
	}
	if strings.TrimSpace(p.Subject) == "" {
		return nil, fmt.Errorf("%w: token has no subject claim", apperrors.ErrIdentityMissing)
	}

	student, err := s.students.GetStudentByAccountID(ctx, p.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) || errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrStudentNotFound, p.Subject)
		}
		s.logger.Error().Err(err).Str("subject", p.Subject).Msg("Failed to look up student for principal")
		return nil, fmt.Errorf("failed to resolve student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrStudentNotFound, p.Subject)
	}

	return student, nil
}
