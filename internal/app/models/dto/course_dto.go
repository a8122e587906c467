package dto

// CourseResponse represents basic course information.
type CourseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StudyField  string `json:"studyField"`
}

// CreateCourseRequest represents course creation data.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StudyField  string `json:"studyField" binding:"required,oneof=INFORMATICS BUSINESS HEALTHCARE OTHER"`
}
