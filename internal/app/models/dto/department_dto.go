package dto

// ManagerSummary is the flattened manager projection on a department listing.
type ManagerSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Title     string `json:"title"`
}

// DepartmentResponse represents basic department information. Manager is nil
// when the department has none.
type DepartmentResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DepartmentType string          `json:"departmentType"`
	Manager        *ManagerSummary `json:"manager,omitempty"`
}

// DepartmentListResponse represents one page of departments.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	TotalCount  int                  `json:"totalCount"`
}

// CreateDepartmentRequest represents department creation data.
type CreateDepartmentRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	DepartmentType string `json:"departmentType" binding:"required,oneof=DEPARTMENT MANAGEMENT OTHER"`
}
