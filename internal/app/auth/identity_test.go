package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
	"github.com/mverbeke/campushub/internal/pkg/logger"
)

type mockStudentFinder struct {
	students map[string]*models.Student
	err      error
}

func (m *mockStudentFinder) GetStudentByAccountID(_ context.Context, accountID string) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.students[accountID]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return s, nil
}

func TestResolveStudentUnauthenticated(t *testing.T) {
	svc := NewIdentityService(&mockStudentFinder{}, logger.Nop())

	_, err := svc.ResolveStudent(context.Background(), Anonymous)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestResolveStudentMissingSubjectClaim(t *testing.T) {
	svc := NewIdentityService(&mockStudentFinder{}, logger.Nop())

	_, err := svc.ResolveStudent(context.Background(), Principal{Authenticated: true})
	if !errors.Is(err, apperrors.ErrIdentityMissing) {
		t.Errorf("got %v, want ErrIdentityMissing", err)
	}

	_, err = svc.ResolveStudent(context.Background(), Principal{Authenticated: true, Subject: "   "})
	if !errors.Is(err, apperrors.ErrIdentityMissing) {
		t.Errorf("blank subject: got %v, want ErrIdentityMissing", err)
	}
}

func TestResolveStudentUnknownSubject(t *testing.T) {
	svc := NewIdentityService(&mockStudentFinder{students: map[string]*models.Student{}}, logger.Nop())

	_, err := svc.ResolveStudent(context.Background(), Principal{Authenticated: true, Subject: "acc-404"})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("got %v, want ErrStudentNotFound", err)
	}
}

func TestResolveStudentSuccess(t *testing.T) {
	want := &models.Student{ID: 42, StudentNumber: "S-0042"}
	svc := NewIdentityService(&mockStudentFinder{
		students: map[string]*models.Student{"acc-42": want},
	}, logger.Nop())

	got, err := svc.ResolveStudent(context.Background(), Principal{Authenticated: true, Subject: "acc-42"})
	if err != nil {
		t.Fatalf("ResolveStudent failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveStudentRepositoryFailure(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewIdentityService(&mockStudentFinder{err: repoErr}, logger.Nop())

	_, err := svc.ResolveStudent(context.Background(), Principal{Authenticated: true, Subject: "acc-1"})
	if !errors.Is(err, repoErr) {
		t.Errorf("got %v, want wrapped repository error", err)
	}
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Error("infrastructure failure must not map to NotFound")
	}
}
