package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finz/backend/internal/application/usecase/category"
	"github.com/finz/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints and the goal form presets.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}

// GoalPresets handles GET /goals/presets requests.
func (c *CategoryController) GoalPresets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToGoalPresetsResponse())
}
