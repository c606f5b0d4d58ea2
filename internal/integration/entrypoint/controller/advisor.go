package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finz/backend/internal/application/usecase/advisor"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/integration/entrypoint/dto"
	"github.com/finz/backend/internal/integration/entrypoint/middleware"
)

// AdvisorController handles advisor chat endpoints.
type AdvisorController struct {
	adviceUseCase *advisor.GetAdviceUseCase
	statusUseCase *advisor.GetStatusUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	adviceUseCase *advisor.GetAdviceUseCase,
	statusUseCase *advisor.GetStatusUseCase,
) *AdvisorController {
	return &AdvisorController{
		adviceUseCase: adviceUseCase,
		statusUseCase: statusUseCase,
	}
}

// Ask handles POST /advisor/ask requests.
// Collaborator failures are answered with a fixed reply and status 200.
func (c *AdvisorController) Ask(ctx *gin.Context) {
	clientID, _ := middleware.GetClientIDFromContext(ctx)

	var req dto.AskAdvisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyQuery),
		})
		return
	}

	output, err := c.adviceUseCase.Execute(ctx.Request.Context(), advisor.GetAdviceInput{
		ClientID: clientID,
		Query:    req.Query,
	})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAskAdvisorResponse(output))
}

// Status handles GET /advisor/status requests.
func (c *AdvisorController) Status(ctx *gin.Context) {
	clientID, _ := middleware.GetClientIDFromContext(ctx)

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), clientID)
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdvisorStatusResponse(output))
}

// handleAdvisorError maps domain errors to HTTP responses.
func (c *AdvisorController) handleAdvisorError(ctx *gin.Context, err error) {
	var advErr *domainerror.AdvisorError
	if errors.As(err, &advErr) {
		statusCode := c.getStatusCodeForAdvisorError(advErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: advErr.Message,
			Code:  string(advErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAdvisorError maps advisor error codes to HTTP status codes.
func (c *AdvisorController) getStatusCodeForAdvisorError(code domainerror.AdvisorErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyQuery:
		return http.StatusBadRequest
	case domainerror.ErrCodeAdviceInProgress:
		return http.StatusConflict
	case domainerror.ErrCodeAdvisorRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
