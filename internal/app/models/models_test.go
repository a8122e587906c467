package models

import (
	"errors"
	"testing"
	"time"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

func mustStudent(t *testing.T, number string) *Student {
	t.Helper()
	s, err := NewStudent(&User{ID: 1, Role: RoleStudent}, number)
	if err != nil {
		t.Fatalf("NewStudent(%q) returned error: %v", number, err)
	}
	return s
}

func TestNewStudentValidation(t *testing.T) {
	if _, err := NewStudent(nil, "   "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank student number: got %v, want ErrValidationFailed", err)
	}
	if _, err := NewStudent(nil, ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("empty student number: got %v, want ErrValidationFailed", err)
	}
}

func TestNewCourseValidation(t *testing.T) {
	if _, err := NewCourse("", "desc", StudyFieldInformatics); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank course name: got %v, want ErrValidationFailed", err)
	}
	c, err := NewCourse("Algorithms", "", StudyFieldInformatics)
	if err != nil {
		t.Fatalf("valid course returned error: %v", err)
	}
	if err := c.Rename(" "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank rename: got %v, want ErrValidationFailed", err)
	}
	if c.Name != "Algorithms" {
		t.Errorf("failed rename mutated name to %q", c.Name)
	}
}

func TestEnrollStudentUpdatesBothSides(t *testing.T) {
	course, _ := NewCourse("Databases", "", StudyFieldInformatics)
	student := mustStudent(t, "S-1001")

	if err := course.EnrollStudent(student); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}
	if len(course.Students) != 1 || course.Students[0] != student {
		t.Errorf("course side not updated: %+v", course.Students)
	}
	if len(student.Courses) != 1 || student.Courses[0] != course {
		t.Errorf("student side not updated: %+v", student.Courses)
	}
}

func TestEnrollStudentDuplicateIsConflict(t *testing.T) {
	course, _ := NewCourse("Databases", "", StudyFieldInformatics)
	student := mustStudent(t, "S-1001")

	if err := course.EnrollStudent(student); err != nil {
		t.Fatalf("first enrollment failed: %v", err)
	}
	err := course.EnrollStudent(student)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("duplicate enrollment: got %v, want ErrAlreadyEnrolled", err)
	}
	if len(course.Students) != 1 || len(student.Courses) != 1 {
		t.Errorf("conflict mutated a side: course=%d student=%d",
			len(course.Students), len(student.Courses))
	}
}

func TestAddDeadlineAttachesCourse(t *testing.T) {
	course, _ := NewCourse("Databases", "", StudyFieldInformatics)
	course.ID = 7
	deadline, _ := NewDeadline("Project 1", "", time.Now(), time.Now().AddDate(0, 0, 14))

	if err := course.AddDeadline(deadline); err != nil {
		t.Fatalf("AddDeadline failed: %v", err)
	}
	if deadline.Course != course {
		t.Error("deadline course reference not set")
	}
	if deadline.CourseID == nil || *deadline.CourseID != 7 {
		t.Errorf("deadline CourseID not set: %v", deadline.CourseID)
	}
	if deadline.CourseName() != "Databases" {
		t.Errorf("CourseName() = %q, want Databases", deadline.CourseName())
	}

	if err := course.AddDeadline(deadline); !errors.Is(err, apperrors.ErrDeadlineAttached) {
		t.Errorf("re-attach: got %v, want ErrDeadlineAttached", err)
	}
	if len(course.Deadlines) != 1 {
		t.Errorf("conflict mutated course deadlines: %d", len(course.Deadlines))
	}
}

func TestAssignStudentCreatesJunctionOnBothSides(t *testing.T) {
	deadline, _ := NewDeadline("Essay", "", time.Now(), time.Now().AddDate(0, 0, 7))
	student := mustStudent(t, "S-2002")

	sd, err := deadline.AssignStudent(student)
	if err != nil {
		t.Fatalf("AssignStudent failed: %v", err)
	}
	if sd.IsCompleted {
		t.Error("new assignment must start incomplete")
	}
	if len(deadline.Assignments) != 1 || deadline.Assignments[0] != sd {
		t.Errorf("deadline side not updated: %+v", deadline.Assignments)
	}
	if len(student.Deadlines) != 1 || student.Deadlines[0] != sd {
		t.Errorf("student side not updated: %+v", student.Deadlines)
	}
}

func TestAssignStudentDuplicateIsConflict(t *testing.T) {
	deadline, _ := NewDeadline("Essay", "", time.Now(), time.Now().AddDate(0, 0, 7))
	student := mustStudent(t, "S-2002")

	if _, err := deadline.AssignStudent(student); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}
	_, err := deadline.AssignStudent(student)
	if !errors.Is(err, apperrors.ErrAlreadyAssigned) {
		t.Fatalf("duplicate assignment: got %v, want ErrAlreadyAssigned", err)
	}
	if len(deadline.Assignments) != 1 || len(student.Deadlines) != 1 {
		t.Errorf("conflict mutated a side: deadline=%d student=%d",
			len(deadline.Assignments), len(student.Deadlines))
	}
}

func TestCompletionIsPerAssignment(t *testing.T) {
	deadline, _ := NewDeadline("Lab report", "", time.Now(), time.Now().AddDate(0, 0, 3))
	alice := mustStudent(t, "S-0001")
	bob := mustStudent(t, "S-0002")
	bob.User.ID = 2

	sdA, _ := deadline.AssignStudent(alice)
	sdB, _ := deadline.AssignStudent(bob)

	sdA.IsCompleted = true
	if sdB.IsCompleted {
		t.Error("completing one assignment flipped another student's flag")
	}
}

func TestDepartmentMembership(t *testing.T) {
	dep, err := NewDepartment("Applied CS", "Computer science programmes", DepartmentTypeDepartment)
	if err != nil {
		t.Fatalf("NewDepartment failed: %v", err)
	}

	studentUser := &User{ID: 1, Role: RoleStudent}
	employeeUser := &User{ID: 2, Role: RoleEmployee}

	if err := dep.AddMember(studentUser); err != nil {
		t.Fatalf("AddMember(student) failed: %v", err)
	}
	if err := dep.AddMember(employeeUser); err != nil {
		t.Fatalf("AddMember(employee) failed: %v", err)
	}
	if err := dep.AddMember(studentUser); !errors.Is(err, apperrors.ErrAlreadyMember) {
		t.Errorf("duplicate member: got %v, want ErrAlreadyMember", err)
	}
	if len(dep.Members) != 2 {
		t.Errorf("conflict mutated members: %d", len(dep.Members))
	}

	if got := dep.Students(); len(got) != 1 || got[0] != studentUser {
		t.Errorf("Students() = %+v, want the one student member", got)
	}
	if got := dep.Employees(); len(got) != 1 || got[0] != employeeUser {
		t.Errorf("Employees() = %+v, want the one employee member", got)
	}
}

func TestDepartmentSetters(t *testing.T) {
	dep, _ := NewDepartment("Applied CS", "desc", DepartmentTypeDepartment)

	if err := dep.Rename(""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank rename: got %v, want ErrValidationFailed", err)
	}
	if err := dep.SetDescription("  "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank description: got %v, want ErrValidationFailed", err)
	}
	if dep.Name != "Applied CS" || dep.Description != "desc" {
		t.Errorf("failed setters mutated the department: %+v", dep)
	}

	if err := dep.Rename("Business IT"); err != nil {
		t.Fatalf("valid rename failed: %v", err)
	}
	if dep.Name != "Business IT" {
		t.Errorf("rename not applied: %q", dep.Name)
	}
}

func TestWeekdaysOrder(t *testing.T) {
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	if len(Weekdays) != len(want) {
		t.Fatalf("Weekdays has %d entries, want %d", len(Weekdays), len(want))
	}
	for i, d := range want {
		if Weekdays[i] != d {
			t.Errorf("Weekdays[%d] = %s, want %s", i, Weekdays[i], d)
		}
	}
}
