package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/services"
	"github.com/mverbeke/campushub/internal/middleware"
)

// CourseController handles courses and their associations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created successfully"))
}

// CreateDeadline handles deadline creation
func (c *CourseController) CreateDeadline(ctx *gin.Context) {
	var req dto.CreateDeadlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid deadline data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	deadline, err := c.courseService.CreateDeadline(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(deadline, "Deadline created successfully"))
}

// EnrollStudent enrolls a student in a course.
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.courseService.EnrollStudent(ctx, courseID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Student enrolled successfully"))
}

// AttachDeadline links a deadline to a course.
func (c *CourseController) AttachDeadline(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	deadlineID, ok := pathID(ctx, "deadlineId")
	if !ok {
		return
	}

	if err := c.courseService.AttachDeadline(ctx, courseID, deadlineID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(nil, "Deadline attached successfully"))
}

// AssignDeadline assigns a deadline to a student.
func (c *CourseController) AssignDeadline(ctx *gin.Context) {
	deadlineID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	assignment, err := c.courseService.AssignDeadline(ctx, deadlineID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment, "Deadline assigned successfully"))
}
