package models

// Student defines the student model based on the 'students' table. Course
// enrollment and deadline assignment are only reachable through the owning
// Course/Deadline; the unexported mutators below keep both sides of each link
// consistent.
type Student struct {
	ID            int64  `json:"id" db:"id"`
	UserID        int64  `json:"userId" db:"user_id"`
	StudentNumber string `json:"studentNumber" db:"student_number"`

	// Relations (populated when needed)
	User      *User              `json:"user,omitempty"`
	Courses   []*Course          `json:"courses,omitempty"`
	Deadlines []*StudentDeadline `json:"deadlines,omitempty"`
}

// NewStudent creates a student, validating required fields up front.
func NewStudent(user *User, studentNumber string) (*Student, error) {
	number, err := guardNonBlank("student number", studentNumber)
	if err != nil {
		return nil, err
	}

	s := &Student{StudentNumber: number, User: user}
	if user != nil {
		s.UserID = user.ID
	}
	return s, nil
}

// hasCourse reports whether the student is already enrolled in the course,
// checked by identity within the student's own collection.
func (s *Student) hasCourse(course *Course) bool {
	for _, c := range s.Courses {
		if c == course || (c.ID != 0 && c.ID == course.ID) {
			return true
		}
	}
	return false
}

// enrollIn records the student's side of an enrollment. Only called by
// Course.EnrollStudent, which has already verified both sides.
func (s *Student) enrollIn(course *Course) {
	s.Courses = append(s.Courses, course)
}

// hasAssignment reports whether the given deadline is already assigned to
// this student.
func (s *Student) hasAssignment(deadline *Deadline) bool {
	for _, sd := range s.Deadlines {
		if sd.Deadline == deadline || (sd.DeadlineID != 0 && sd.DeadlineID == deadline.ID) {
			return true
		}
	}
	return false
}

// addAssignment records the student's side of a deadline assignment. Only
// called by Deadline.AssignStudent.
func (s *Student) addAssignment(sd *StudentDeadline) {
	s.Deadlines = append(s.Deadlines, sd)
}
