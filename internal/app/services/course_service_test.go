package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
	"github.com/mverbeke/campushub/internal/pkg/logger"
)

func newCourseService() (*CourseService, *mockCourseStore, *mockStudentStore, *mockDeadlineLinkStore) {
	courses := newMockCourseStore()
	students := &mockStudentStore{students: map[int64]*models.Student{
		1: {ID: 1, StudentNumber: "S-0001"},
	}}
	deadlines := newMockDeadlineLinkStore()
	return NewCourseService(courses, students, deadlines, logger.Nop()), courses, students, deadlines
}

func TestCreateCourse(t *testing.T) {
	svc, _, _, _ := newCourseService()

	res, err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name: "Databases", StudyField: "INFORMATICS",
	})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if res.ID == 0 || res.Name != "Databases" || res.StudyField != "INFORMATICS" {
		t.Errorf("create response wrong: %+v", res)
	}

	_, err = svc.CreateCourse(context.Background(), dto.CreateCourseRequest{Name: " "})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank name: got %v, want ErrValidationFailed", err)
	}
}

func TestEnrollStudent(t *testing.T) {
	svc, courses, _, _ := newCourseService()
	courses.courses[10] = &models.Course{ID: 10, Name: "Databases"}

	if err := svc.EnrollStudent(context.Background(), 10, 1); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}
	if err := svc.EnrollStudent(context.Background(), 10, 1); !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Errorf("duplicate: got %v, want ErrAlreadyEnrolled", err)
	}
	if err := svc.EnrollStudent(context.Background(), 99, 1); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("missing course: got %v, want ErrCourseNotFound", err)
	}
	if err := svc.EnrollStudent(context.Background(), 10, 99); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("missing student: got %v, want ErrStudentNotFound", err)
	}
}

func TestAttachDeadline(t *testing.T) {
	svc, courses, _, deadlines := newCourseService()
	courses.courses[10] = &models.Course{ID: 10, Name: "Databases"}
	deadlines.deadlines[5] = &models.Deadline{ID: 5, Title: "Project"}

	if err := svc.AttachDeadline(context.Background(), 10, 5); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := svc.AttachDeadline(context.Background(), 10, 5); !errors.Is(err, apperrors.ErrDeadlineAttached) {
		t.Errorf("re-attach: got %v, want ErrDeadlineAttached", err)
	}
	if err := svc.AttachDeadline(context.Background(), 10, 99); !errors.Is(err, apperrors.ErrDeadlineNotFound) {
		t.Errorf("missing deadline: got %v, want ErrDeadlineNotFound", err)
	}
}

func TestAssignDeadline(t *testing.T) {
	svc, _, _, deadlines := newCourseService()
	deadlines.deadlines[5] = &models.Deadline{ID: 5, Title: "Project"}

	sd, err := svc.AssignDeadline(context.Background(), 5, 1)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if sd.StudentID != 1 || sd.DeadlineID != 5 || sd.IsCompleted {
		t.Errorf("junction wrong: %+v", sd)
	}

	if _, err := svc.AssignDeadline(context.Background(), 5, 1); !errors.Is(err, apperrors.ErrAlreadyAssigned) {
		t.Errorf("duplicate: got %v, want ErrAlreadyAssigned", err)
	}
	if _, err := svc.AssignDeadline(context.Background(), 99, 1); !errors.Is(err, apperrors.ErrDeadlineNotFound) {
		t.Errorf("missing deadline: got %v, want ErrDeadlineNotFound", err)
	}
	if _, err := svc.AssignDeadline(context.Background(), 5, 99); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("missing student: got %v, want ErrStudentNotFound", err)
	}
}

func TestCreateDeadline(t *testing.T) {
	svc, _, _, deadlines := newCourseService()

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	d, err := svc.CreateDeadline(context.Background(), dto.CreateDeadlineRequest{
		Title: "Project", StartDate: start, DueDate: start.AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("CreateDeadline failed: %v", err)
	}
	if d.ID == 0 || deadlines.deadlines[d.ID] != d {
		t.Errorf("deadline not stored: %+v", d)
	}
}
