// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/finz/backend/config"
	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/application/usecase/advisor"
	"github.com/finz/backend/internal/application/usecase/category"
	"github.com/finz/backend/internal/application/usecase/dashboard"
	"github.com/finz/backend/internal/application/usecase/goal"
	"github.com/finz/backend/internal/application/usecase/transaction"
	"github.com/finz/backend/internal/infra/server/router"
	"github.com/finz/backend/internal/integration/entrypoint/controller"
	"github.com/finz/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	State              *state.AppState
	Router             *router.Router
	AdvisorRateLimiter *middleware.RateLimiter
	AdvisorTracker     *advisor.PendingTracker
}

// Services groups the collaborators built outside the injector.
type Services struct {
	// StorageHealth reports whether the slot backend answers.
	StorageHealth func() bool
	// StorageBackend names the slot backend for the health endpoint.
	StorageBackend string
	// Advice is the text-generation collaborator. Nil disables the advisor.
	Advice adapter.AdviceService
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, appState *state.AppState, services Services) *Injector {
	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(appState.Transactions)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(appState.Transactions)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(appState.Transactions)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(appState.Transactions)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(appState.Goals)
	createGoalUseCase := goal.NewCreateGoalUseCase(appState.Goals)
	contributeGoalUseCase := goal.NewContributeGoalUseCase(appState.Goals)

	// Create dashboard use cases
	summaryUseCase := dashboard.NewGetSummaryUseCase(appState.Transactions, appState.Goals)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(appState.Transactions)

	// Create advisor use cases
	tracker := advisor.NewPendingTracker()
	adviceUseCase := advisor.NewGetAdviceUseCase(appState, services.Advice, tracker, cfg.Gemini.Temperature)
	statusUseCase := advisor.NewGetStatusUseCase(func() bool {
		return services.Advice != nil && services.Advice.IsAvailable()
	}, tracker)

	// Create controllers
	healthController := controller.NewHealthController(services.StorageHealth, services.StorageBackend)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		contributeGoalUseCase,
	)
	dashboardController := controller.NewDashboardController(summaryUseCase, breakdownUseCase)
	advisorController := controller.NewAdvisorController(adviceUseCase, statusUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var advisorRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		advisorRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		advisorRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Advisor.RateLimit, cfg.Advisor.RateWindow)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		goalController,
		dashboardController,
		advisorController,
		advisorRateLimiter,
	)

	return &Injector{
		Config:             cfg,
		State:              appState,
		Router:             r,
		AdvisorRateLimiter: advisorRateLimiter,
		AdvisorTracker:     tracker,
	}
}
