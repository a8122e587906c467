package dto

import "time"

// DeadlineResponse is the flat listing projection of one assigned deadline.
// IsCompleted comes from the student's own assignment, not the deadline.
type DeadlineResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	DueDate     time.Time `json:"dueDate"`
	StartDate   time.Time `json:"startDate"`
	Course      string    `json:"course"`
}

// DeadlineListResponse represents one page of a student's deadlines.
type DeadlineListResponse struct {
	Deadlines  []DeadlineResponse `json:"deadlines"`
	TotalCount int                `json:"totalCount"`
}

// ToggleCompletionRequest sets an assignment's completion flag. A pointer so
// an explicit false is distinguishable from an absent field.
type ToggleCompletionRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// CreateDeadlineRequest represents deadline creation data.
type CreateDeadlineRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
}
