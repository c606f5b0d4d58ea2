//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finz/backend/config"
	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/infra/dependency"
	"github.com/finz/backend/internal/integration/persistence"
	"github.com/finz/backend/internal/integration/persistence/model"
	"github.com/finz/backend/test/integration/mock"
)

const (
	transactionsSlot = "transactions"
	goalsSlot        = "goals"
	redisKeyPrefix   = "finz:test:"
)

// referenceTime is the instant the suite clock is frozen at.
var referenceTime = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// swappableHandler lets a scenario restart the application behind a running server.
type swappableHandler struct {
	mu      sync.RWMutex
	handler http.Handler
}

func (s *swappableHandler) set(h http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

func (s *swappableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	h := s.handler
	s.mu.RUnlock()
	h.ServeHTTP(w, r)
}

// testContext holds the state of one scenario.
type testContext struct {
	server  *httptest.Server
	handler *swappableHandler
	client  *http.Client

	db     *mock.Db
	clock  *mock.Clock
	advice *mock.Advice

	backend  string
	slots    adapter.SlotStore
	seedDemo bool
	injector *dependency.Injector

	headers           map[string]string
	response          *response
	lastTransactionID string
	lastGoalID        string
}

type response struct {
	status int
	raw    []byte
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		handler: &swappableHandler{handler: http.NotFoundHandler()},
		client:  &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"slots": &model.SlotModel{},
		}),
		clock:  mock.NewClock(),
		advice: mock.NewAdvice(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Storage and lifecycle steps
	ctx.Given(`^the storage backend is "([^"]*)"$`, test.theStorageBackendIs)
	ctx.Given(`^demo data seeding is enabled$`, test.demoDataSeedingIsEnabled)
	ctx.Given(`^the "([^"]*)" slot contains:$`, test.theSlotContains)
	ctx.When(`^the application is restarted$`, test.theApplicationIsRestarted)

	// Advisor steps
	ctx.Given(`^the advisor answers "([^"]*)"$`, test.theAdvisorAnswers)
	ctx.Given(`^the advisor fails with "([^"]*)"$`, test.theAdvisorFailsWith)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the "([^"]*)" slot should hold (\d+) items$`, test.theSlotShouldHoldItems)
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the last advisor prompt should contain "([^"]*)"$`, test.theLastAdvisorPromptShouldContain)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastTransactionID = ""
	t.lastGoalID = ""
	t.seedDemo = false
	t.advice.Reset()
	t.clock.Freeze(referenceTime)

	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}

	t.useBackend(config.StorageBackendSQLite)

	if t.server == nil {
		t.server = httptest.NewServer(t.handler)
	}

	return t.restart()
}

func (t *testContext) useBackend(backend string) {
	t.backend = backend
	if backend == config.StorageBackendRedis {
		t.slots = persistence.NewRedisSlotRepository(mock.NewRedis(), redisKeyPrefix)
		return
	}
	t.slots = persistence.NewSlotRepository(t.db.DbConn)
}

// restart loads state from the current slots and swaps in a fresh engine.
func (t *testContext) restart() error {
	transactionRepo := persistence.NewTransactionRepository(t.slots, transactionsSlot)
	goalRepo := persistence.NewGoalRepository(t.slots, goalsSlot)

	appState, err := state.LoadState(context.Background(), transactionRepo, goalRepo, state.LoadOptions{
		SeedDemoData: t.seedDemo,
		Now:          t.clock.Now,
	})
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"

	slots := t.slots
	t.injector = dependency.NewInjector(cfg, appState, dependency.Services{
		StorageHealth: func() bool {
			return slots.Ping(context.Background()) == nil
		},
		StorageBackend: t.backend,
		Advice:         t.advice,
	})
	t.handler.set(t.injector.Router.Setup("test"))
	return nil
}
