package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// courseStore is the persistence surface the course service needs.
type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	EnrollStudent(ctx context.Context, courseID, studentID int64) error
}

// studentStore looks up students by primary key.
type studentStore interface {
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}

// deadlineLinkStore covers the deadline side of course associations.
type deadlineLinkStore interface {
	GetDeadlineByID(ctx context.Context, id int64) (*models.Deadline, error)
	AttachToCourse(ctx context.Context, deadlineID, courseID int64) error
	AssignStudent(ctx context.Context, deadlineID, studentID int64) (*models.StudentDeadline, error)
	CreateDeadline(ctx context.Context, deadline *models.Deadline) error
}

// CourseService handles courses and the associations hanging off them:
// student enrollment, deadline attachment and deadline assignment.
type CourseService struct {
	courses   courseStore
	students  studentStore
	deadlines deadlineLinkStore
	logger    zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courses courseStore, students studentStore, deadlines deadlineLinkStore, lgr zerolog.Logger) *CourseService {
	return &CourseService{
		courses:   courses,
		students:  students,
		deadlines: deadlines,
		logger:    lgr,
	}
}

// CreateCourse creates a new course.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course, err := models.NewCourse(req.Name, req.Description, models.StudyField(req.StudyField))
	if err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("name", course.Name).Msg("Failed to create course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return &dto.CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		StudyField:  string(course.StudyField),
	}, nil
}

// CreateDeadline creates a new unattached deadline.
func (s *CourseService) CreateDeadline(ctx context.Context, req dto.CreateDeadlineRequest) (*models.Deadline, error) {
	deadline, err := models.NewDeadline(req.Title, req.Description, req.StartDate, req.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.deadlines.CreateDeadline(ctx, deadline); err != nil {
		s.logger.Error().Err(err).Str("title", deadline.Title).Msg("Failed to create deadline")
		return nil, fmt.Errorf("error creating deadline: %w", err)
	}
	return deadline, nil
}

// EnrollStudent enrolls a student in a course. Both ends must exist;
// enrolling twice is a conflict.
func (s *CourseService) EnrollStudent(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if err := s.requireStudent(ctx, studentID); err != nil {
		return err
	}

	return s.courses.EnrollStudent(ctx, courseID, studentID)
}

// AttachDeadline links an existing deadline to a course. A deadline already
// owned by a course cannot be re-attached.
func (s *CourseService) AttachDeadline(ctx context.Context, courseID, deadlineID int64) error {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.deadlines.GetDeadlineByID(ctx, deadlineID); err != nil {
		return err
	}

	return s.deadlines.AttachToCourse(ctx, deadlineID, courseID)
}

// AssignDeadline assigns a deadline to a student, creating the junction that
// carries the student's own completion flag. Assigning twice is a conflict.
func (s *CourseService) AssignDeadline(ctx context.Context, deadlineID, studentID int64) (*models.StudentDeadline, error) {
	if _, err := s.deadlines.GetDeadlineByID(ctx, deadlineID); err != nil {
		return nil, err
	}
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}

	return s.deadlines.AssignStudent(ctx, deadlineID, studentID)
}

func (s *CourseService) requireStudent(ctx context.Context, studentID int64) error {
	if _, err := s.students.GetStudentByID(ctx, studentID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return fmt.Errorf("%w: %d", apperrors.ErrStudentNotFound, studentID)
		}
		return err
	}
	return nil
}
