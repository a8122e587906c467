package models

import (
	"fmt"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// Course represents a course within a study field. A course owns its side of
// the student-enrollment and deadline-association links; the paired mutators
// update both sides in one call or not at all.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description,omitempty" db:"description"`
	StudyField  StudyField `json:"studyField" db:"study_field"`

	// Relations (populated when needed)
	Students  []*Student  `json:"students,omitempty"`
	Deadlines []*Deadline `json:"deadlines,omitempty"`
}

// NewCourse creates a course, validating the required name. Description is
// optional.
func NewCourse(name, description string, field StudyField) (*Course, error) {
	n, err := guardNonBlank("course name", name)
	if err != nil {
		return nil, err
	}

	return &Course{
		Name:        n,
		Description: description,
		StudyField:  field,
	}, nil
}

// Rename changes the course name, rejecting blank values.
func (c *Course) Rename(name string) error {
	n, err := guardNonBlank("course name", name)
	if err != nil {
		return err
	}
	c.Name = n
	return nil
}

// EnrollStudent enrolls a student in this course. Both Course.Students and
// Student.Courses are updated in the same call; a duplicate enrollment on
// either side is a conflict and nothing is mutated.
func (c *Course) EnrollStudent(student *Student) error {
	if c.hasStudent(student) || student.hasCourse(c) {
		return fmt.Errorf("%w: course %q", apperrors.ErrAlreadyEnrolled, c.Name)
	}

	c.Students = append(c.Students, student)
	student.enrollIn(c)
	return nil
}

// AddDeadline associates a deadline with this course, setting the deadline's
// course reference in the same call. Re-associating is a conflict.
func (c *Course) AddDeadline(deadline *Deadline) error {
	if c.hasDeadline(deadline) {
		return fmt.Errorf("%w: course %q", apperrors.ErrDeadlineAttached, c.Name)
	}

	c.Deadlines = append(c.Deadlines, deadline)
	deadline.attachTo(c)
	return nil
}

func (c *Course) hasStudent(student *Student) bool {
	for _, s := range c.Students {
		if s == student || (s.ID != 0 && s.ID == student.ID) {
			return true
		}
	}
	return false
}

func (c *Course) hasDeadline(deadline *Deadline) bool {
	for _, d := range c.Deadlines {
		if d == deadline || (d.ID != 0 && d.ID == deadline.ID) {
			return true
		}
	}
	return false
}
