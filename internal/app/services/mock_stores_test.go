package services

import (
	"context"

	"github.com/mverbeke/campushub/internal/app/auth"
	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// Hand-written mocks for the store interfaces used by the services.

type mockIdentity struct {
	student *models.Student
	err     error
}

func (m *mockIdentity) ResolveStudent(_ context.Context, _ auth.Principal) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.student, nil
}

type mockDeadlineStore struct {
	assignments []*models.StudentDeadline
	listErr     error

	completionCalls []completionCall
}

type completionCall struct {
	assignmentID int64
	isCompleted  bool
}

func (m *mockDeadlineStore) GetAssignmentsForStudent(_ context.Context, _ int64) ([]*models.StudentDeadline, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.assignments, nil
}

func (m *mockDeadlineStore) GetAssignment(_ context.Context, studentID, deadlineID int64) (*models.StudentDeadline, error) {
	for _, sd := range m.assignments {
		if sd.StudentID == studentID && sd.DeadlineID == deadlineID {
			return sd, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockDeadlineStore) SetAssignmentCompletion(_ context.Context, assignmentID int64, isCompleted bool) error {
	m.completionCalls = append(m.completionCalls, completionCall{assignmentID, isCompleted})
	for _, sd := range m.assignments {
		if sd.ID == assignmentID {
			sd.IsCompleted = isCompleted
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

type mockDepartmentStore struct {
	departments []*models.Department
	getErr      error
	createErr   error
	created     []*models.Department
}

func (m *mockDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.departments, nil
}

func (m *mockDepartmentStore) Create(_ context.Context, department *models.Department) error {
	if m.createErr != nil {
		return m.createErr
	}
	department.ID = int64(len(m.created) + 1)
	m.created = append(m.created, department)
	return nil
}

type mockRestoStore struct {
	restos []*models.Resto
	err    error
	calls  int
}

func (m *mockRestoStore) GetAllWithMenus(_ context.Context) ([]*models.Resto, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.restos, nil
}

type mockCourseStore struct {
	courses  map[int64]*models.Course
	enrolled map[[2]int64]bool
}

func newMockCourseStore() *mockCourseStore {
	return &mockCourseStore{
		courses:  make(map[int64]*models.Course),
		enrolled: make(map[[2]int64]bool),
	}
}

func (m *mockCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = int64(len(m.courses) + 1)
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (m *mockCourseStore) EnrollStudent(_ context.Context, courseID, studentID int64) error {
	key := [2]int64{courseID, studentID}
	if m.enrolled[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	m.enrolled[key] = true
	return nil
}

type mockStudentStore struct {
	students map[int64]*models.Student
}

func (m *mockStudentStore) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return s, nil
}

type mockDeadlineLinkStore struct {
	deadlines map[int64]*models.Deadline
	assigned  map[[2]int64]bool
}

func newMockDeadlineLinkStore() *mockDeadlineLinkStore {
	return &mockDeadlineLinkStore{
		deadlines: make(map[int64]*models.Deadline),
		assigned:  make(map[[2]int64]bool),
	}
}

func (m *mockDeadlineLinkStore) GetDeadlineByID(_ context.Context, id int64) (*models.Deadline, error) {
	d, ok := m.deadlines[id]
	if !ok {
		return nil, apperrors.ErrDeadlineNotFound
	}
	return d, nil
}

func (m *mockDeadlineLinkStore) AttachToCourse(_ context.Context, deadlineID, courseID int64) error {
	d, ok := m.deadlines[deadlineID]
	if !ok {
		return apperrors.ErrDeadlineNotFound
	}
	if d.CourseID != nil {
		return apperrors.ErrDeadlineAttached
	}
	d.CourseID = &courseID
	return nil
}

func (m *mockDeadlineLinkStore) AssignStudent(_ context.Context, deadlineID, studentID int64) (*models.StudentDeadline, error) {
	key := [2]int64{deadlineID, studentID}
	if m.assigned[key] {
		return nil, apperrors.ErrAlreadyAssigned
	}
	m.assigned[key] = true
	return &models.StudentDeadline{StudentID: studentID, DeadlineID: deadlineID}, nil
}

func (m *mockDeadlineLinkStore) CreateDeadline(_ context.Context, deadline *models.Deadline) error {
	deadline.ID = int64(len(m.deadlines) + 1)
	m.deadlines[deadline.ID] = deadline
	return nil
}
