package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finz/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetSummary handles GET /dashboard requests.
// Query parameter private=true masks every amount.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	private, err := parsePrivate(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{Private: private})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/categories requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	private, err := parsePrivate(ctx)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{Private: private})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

func parsePrivate(ctx *gin.Context) (bool, error) {
	raw := ctx.Query("private")
	if raw == "" {
		return false, nil
	}

	private, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPrivacyFlag,
			"private must be true or false",
			domainerror.ErrInvalidPrivacyFlag,
		)
	}
	return private, nil
}

// handleDashboardError maps domain errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := http.StatusInternalServerError
		if dashErr.Code == domainerror.ErrCodeInvalidPrivacyFlag {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to build dashboard",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}
