package models

import (
	"fmt"
	"time"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// Deadline represents a dated task, optionally owned by a course. Per-student
// assignment state lives on the StudentDeadline junction, so the same
// deadline carries independent completion flags per student.
type Deadline struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	CourseID    *int64    `json:"courseId,omitempty" db:"course_id"` // Nullable

	// Relations (populated when needed)
	Course      *Course            `json:"course,omitempty"`
	Assignments []*StudentDeadline `json:"assignments,omitempty"`
}

// StudentDeadline is the junction linking one student to one deadline. The
// IsCompleted flag belongs here, not on the deadline, so completion is
// tracked per assignment.
type StudentDeadline struct {
	ID          int64 `json:"id" db:"id"`
	StudentID   int64 `json:"studentId" db:"student_id"`
	DeadlineID  int64 `json:"deadlineId" db:"deadline_id"`
	IsCompleted bool  `json:"isCompleted" db:"is_completed"`

	// Relations (populated when needed)
	Student  *Student  `json:"student,omitempty"`
	Deadline *Deadline `json:"deadline,omitempty"`
}

// NewDeadline creates a deadline, validating the required title.
func NewDeadline(title, description string, startDate, dueDate time.Time) (*Deadline, error) {
	t, err := guardNonBlank("deadline title", title)
	if err != nil {
		return nil, err
	}

	return &Deadline{
		Title:       t,
		Description: description,
		StartDate:   startDate,
		DueDate:     dueDate,
	}, nil
}

// Retitle changes the deadline title, rejecting blank values.
func (d *Deadline) Retitle(title string) error {
	t, err := guardNonBlank("deadline title", title)
	if err != nil {
		return err
	}
	d.Title = t
	return nil
}

// AssignStudent links a student to this deadline through a new
// StudentDeadline junction, updating both Deadline.Assignments and
// Student.Deadlines in the same call. Assigning the same student twice is a
// conflict and nothing is mutated.
func (d *Deadline) AssignStudent(student *Student) (*StudentDeadline, error) {
	if d.hasAssignmentFor(student) || student.hasAssignment(d) {
		return nil, fmt.Errorf("%w: deadline %q", apperrors.ErrAlreadyAssigned, d.Title)
	}

	sd := &StudentDeadline{
		StudentID:  student.ID,
		DeadlineID: d.ID,
		Student:    student,
		Deadline:   d,
	}
	d.Assignments = append(d.Assignments, sd)
	student.addAssignment(sd)
	return sd, nil
}

// attachTo records the deadline's side of a course association. Only called
// by Course.AddDeadline.
func (d *Deadline) attachTo(course *Course) {
	d.Course = course
	if course.ID != 0 {
		id := course.ID
		d.CourseID = &id
	}
}

func (d *Deadline) hasAssignmentFor(student *Student) bool {
	for _, sd := range d.Assignments {
		if sd.Student == student || (sd.StudentID != 0 && sd.StudentID == student.ID) {
			return true
		}
	}
	return false
}

// CourseName returns the owning course's name, or empty when unattached.
// Used by search and the "Course" virtual ordering field.
func (d *Deadline) CourseName() string {
	if d.Course == nil {
		return ""
	}
	return d.Course.Name
}
