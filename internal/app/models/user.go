package models

import (
	"time"
)

// User defines the shared identity fields of students and employees, based on
// the 'users' table. Role is the discriminant: a user is exactly one of
// STUDENT or EMPLOYEE.
type User struct {
	ID        int64     `json:"id" db:"id"`
	AccountID string    `json:"accountId" db:"account_id"` // External identity reference
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Employee defines the employee model based on the 'employees' table.
type Employee struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"userId" db:"user_id"`
	Title  string `json:"title" db:"title"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
