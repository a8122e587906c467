package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/services"
	"github.com/mverbeke/campushub/internal/middleware"
)

// RestoController handles resto listing endpoints
type RestoController struct {
	restoService *services.RestoService
}

// NewRestoController creates a new RestoController
func NewRestoController(restoService *services.RestoService) *RestoController {
	return &RestoController{restoService: restoService}
}

// ListRestos returns one page of restos with their weekly menus.
func (c *RestoController) ListRestos(ctx *gin.Context) {
	spec, ok := bindQuerySpec(ctx)
	if !ok {
		return
	}

	result, err := c.restoService.List(ctx, spec)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Restos retrieved successfully"))
}
