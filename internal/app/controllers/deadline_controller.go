package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/query"
	"github.com/mverbeke/campushub/internal/app/services"
	"github.com/mverbeke/campushub/internal/middleware"
)

// DeadlineController handles a student's deadline endpoints
type DeadlineController struct {
	deadlineService *services.DeadlineService
}

// NewDeadlineController creates a new DeadlineController
func NewDeadlineController(deadlineService *services.DeadlineService) *DeadlineController {
	return &DeadlineController{deadlineService: deadlineService}
}

// ListDeadlines returns one page of the acting student's deadlines.
func (c *DeadlineController) ListDeadlines(ctx *gin.Context) {
	spec, ok := bindQuerySpec(ctx)
	if !ok {
		return
	}

	result, err := c.deadlineService.ListForStudent(ctx, middleware.GetPrincipal(ctx), spec)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Deadlines retrieved successfully"))
}

// ToggleCompletion sets the completion flag of one of the acting student's
// deadlines.
func (c *DeadlineController) ToggleCompletion(ctx *gin.Context) {
	deadlineID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ToggleCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid completion data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	err := c.deadlineService.ToggleCompletion(ctx, middleware.GetPrincipal(ctx), deadlineID, *req.IsCompleted)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Completion updated"))
}

// bindQuerySpec binds the shared listing parameters, applying the default
// page size when take is absent. Bound values outside the allowed window are
// left for the service's spec validation.
func bindQuerySpec(ctx *gin.Context) (query.Spec, bool) {
	spec := query.Spec{Take: query.DefaultTake}
	if err := ctx.ShouldBindQuery(&spec); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return query.Spec{}, false
	}
	return spec, true
}

// pathID parses a numeric path parameter.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
