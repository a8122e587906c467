package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/services"
	"github.com/mverbeke/campushub/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListDepartments returns one page of departments.
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	spec, ok := bindQuerySpec(ctx)
	if !ok {
		return
	}

	result, err := c.departmentService.List(ctx, spec)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Departments retrieved successfully"))
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department, err := c.departmentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department, "Department created successfully"))
}
