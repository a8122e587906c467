package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverbeke/campushub/internal/app/controllers"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	deadlineController *controllers.DeadlineController,
	departmentController *controllers.DepartmentController,
	restoController *controllers.RestoController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group. Every request gets a principal, even anonymous
	// ones; RequireAuth below decides which routes need more.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.Principal())

	// --- Public routes ---

	// Department listing (public access)
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
	}

	// Resto listing (public access)
	restos := v1.Group("/restos")
	{
		restos.GET("", restoController.ListRestos)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		// The acting student's deadlines
		deadlines := authenticated.Group("/deadlines")
		{
			deadlines.GET("", deadlineController.ListDeadlines)
			deadlines.POST("", courseController.CreateDeadline)
			deadlines.PATCH("/:id/completion", deadlineController.ToggleCompletion)
			deadlines.POST("/:id/assignments/:studentId", courseController.AssignDeadline)
		}

		// Department management
		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.POST("", departmentController.CreateDepartment)
		}

		// Courses and their associations
		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.POST("/:id/students/:studentId", courseController.EnrollStudent)
			courses.POST("/:id/deadlines/:deadlineId", courseController.AttachDeadline)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
