package models

import (
	"fmt"
	"strings"

	"github.com/mverbeke/campushub/internal/pkg/apperrors"
)

// RoleType is the discriminant identifying which kind of user a record is.
// A user is exactly one of these; membership splits filter on this tag.
type RoleType string

const (
	RoleStudent  RoleType = "STUDENT"
	RoleEmployee RoleType = "EMPLOYEE"
)

// DepartmentType classifies a department.
type DepartmentType string

const (
	DepartmentTypeDepartment DepartmentType = "DEPARTMENT"
	DepartmentTypeManagement DepartmentType = "MANAGEMENT"
	DepartmentTypeOther      DepartmentType = "OTHER"
)

// StudyField is the field of study a course belongs to.
type StudyField string

const (
	StudyFieldInformatics StudyField = "INFORMATICS"
	StudyFieldBusiness    StudyField = "BUSINESS"
	StudyFieldHealthcare  StudyField = "HEALTHCARE"
	StudyFieldOther       StudyField = "OTHER"
)

// Weekday identifies a serving day on a resto menu.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays lists serving days in fixed Monday-to-Friday order. Menu
// projections iterate this slice so output order never depends on map or
// storage order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// FoodCategory classifies a menu item.
type FoodCategory string

const (
	FoodCategorySoup    FoodCategory = "SOUP"
	FoodCategoryMain    FoodCategory = "MAIN"
	FoodCategoryVeggie  FoodCategory = "VEGGIE"
	FoodCategoryDessert FoodCategory = "DESSERT"
)

// guardNonBlank rejects empty or whitespace-only values for fields that carry
// business meaning. Used at construction and at every later assignment so an
// already-valid entity cannot be corrupted by a mutation.
func guardNonBlank(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s cannot be blank", apperrors.ErrValidationFailed, field)
	}
	return value, nil
}
