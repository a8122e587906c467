package models

import (
	"fmt"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// Department represents an organizational department. Members are users of
// either role; the Students and Employees views filter on the role
// discriminant.
type Department struct {
	ID             int64          `json:"id" db:"id"`
	Name           string         `json:"name" db:"name"`
	Description    string         `json:"description" db:"description"`
	DepartmentType DepartmentType `json:"departmentType" db:"department_type"`
	ManagerID      *int64         `json:"managerId,omitempty" db:"manager_id"` // Nullable

	// Relations (populated when needed)
	Manager *Employee `json:"manager,omitempty"`
	Members []*User   `json:"members,omitempty"`
}

// NewDepartment creates a department, validating required fields up front.
func NewDepartment(name, description string, kind DepartmentType) (*Department, error) {
	n, err := guardNonBlank("department name", name)
	if err != nil {
		return nil, err
	}
	desc, err := guardNonBlank("department description", description)
	if err != nil {
		return nil, err
	}

	return &Department{
		Name:           n,
		Description:    desc,
		DepartmentType: kind,
	}, nil
}

// Rename changes the department name, rejecting blank values.
func (d *Department) Rename(name string) error {
	n, err := guardNonBlank("department name", name)
	if err != nil {
		return err
	}
	d.Name = n
	return nil
}

// SetDescription changes the description, rejecting blank values.
func (d *Department) SetDescription(description string) error {
	desc, err := guardNonBlank("department description", description)
	if err != nil {
		return err
	}
	d.Description = desc
	return nil
}

// AddMember adds a user to the department. Adding someone who is already a
// member is a conflict and nothing is mutated.
func (d *Department) AddMember(user *User) error {
	for _, m := range d.Members {
		if m == user || (m.ID != 0 && m.ID == user.ID) {
			return fmt.Errorf("%w: department %q", apperrors.ErrAlreadyMember, d.Name)
		}
	}

	d.Members = append(d.Members, user)
	return nil
}

// Students returns the members carrying the STUDENT discriminant.
func (d *Department) Students() []*User {
	return d.membersWithRole(RoleStudent)
}

// Employees returns the members carrying the EMPLOYEE discriminant.
func (d *Department) Employees() []*User {
	return d.membersWithRole(RoleEmployee)
}

func (d *Department) membersWithRole(role RoleType) []*User {
	var out []*User
	for _, m := range d.Members {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}
