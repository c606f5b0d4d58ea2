package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finz/backend/config"
	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/application/usecase/advisor"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/infra/dependency"
	"github.com/finz/backend/internal/integration/entrypoint/middleware"
)

type stubAdvice struct {
	mu      sync.Mutex
	answer  string
	err     error
	block   chan struct{}
	prompts []string
}

func (s *stubAdvice) GenerateAdvice(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, request.Prompt)
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	return s.answer, s.err
}

func (s *stubAdvice) IsAvailable() bool { return true }

type harness struct {
	engine   *gin.Engine
	injector *dependency.Injector
}

func newHarness(t *testing.T, advice adapter.AdviceService) *harness {
	t.Helper()
	t.Setenv("ENV", "test")

	cfg := config.Load()
	cfg.Server.Environment = "test"

	appState := &state.AppState{
		Transactions: state.NewTransactionStore(nil, nil, nil),
		Goals:        state.NewGoalStore(nil, nil, nil),
	}

	injector := dependency.NewInjector(cfg, appState, dependency.Services{
		StorageHealth:  func() bool { return true },
		StorageBackend: config.StorageBackendSQLite,
		Advice:         advice,
	})

	return &harness{
		engine:   injector.Router.Setup("test"),
		injector: injector,
	}
}

func (h *harness) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.ClientIDHeader, "device-1")
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	h := newHarness(t, nil)

	w, body := h.do(t, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["storage"] != "connected" || body["backend"] != "sqlite" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestTransactionEndpoints(t *testing.T) {
	h := newHarness(t, nil)

	w, created := h.do(t, http.MethodPost, "/api/v1/transactions", map[string]any{
		"amount":   150,
		"type":     "expense",
		"category": "Food",
		"note":     "Burger King",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if created["amount"] != "150" || created["category"] != "Food" {
		t.Errorf("unexpected created body: %v", created)
	}

	w, _ = h.do(t, http.MethodPost, "/api/v1/transactions", map[string]any{
		"amount":          900,
		"type":            "income",
		"category":        "Other",
		"custom_category": "Freelance",
		"date":            "2026-10-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w, list := h.do(t, http.MethodGet, "/api/v1/transactions?type=income", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	items := list["transactions"].([]any)
	if len(items) != 1 || items[0].(map[string]any)["category"] != "Freelance" {
		t.Errorf("expected only the Freelance income, got %v", items)
	}
	totals := list["totals"].(map[string]any)
	if totals["balance"] != "750" {
		t.Errorf("expected totals over every transaction, got %v", totals)
	}

	w, _ = h.do(t, http.MethodDelete, "/api/v1/transactions/"+created["id"].(string), nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	w, _ = h.do(t, http.MethodDelete, "/api/v1/transactions/does-not-exist", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for unknown id, got %d", w.Code)
	}
	if h.injector.State.Transactions.Len() != 1 {
		t.Errorf("expected 1 transaction left, got %d", h.injector.State.Transactions.Len())
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]any
		expectedCode string
	}{
		{
			name:         "missing amount",
			body:         map[string]any{"type": "expense", "category": "Food"},
			expectedCode: string(domainerror.ErrCodeMissingTransactionFields),
		},
		{
			name:         "negative amount",
			body:         map[string]any{"amount": -5, "type": "expense", "category": "Food"},
			expectedCode: string(domainerror.ErrCodeInvalidTransactionAmount),
		},
		{
			name:         "unknown type",
			body:         map[string]any{"amount": 5, "type": "transfer", "category": "Food"},
			expectedCode: string(domainerror.ErrCodeMissingTransactionFields),
		},
		{
			name:         "blank category",
			body:         map[string]any{"amount": 5, "type": "expense", "category": "   "},
			expectedCode: string(domainerror.ErrCodeInvalidTransactionCategory),
		},
		{
			name:         "bad date",
			body:         map[string]any{"amount": 5, "type": "expense", "category": "Food", "date": "yesterday"},
			expectedCode: string(domainerror.ErrCodeMissingTransactionFields),
		},
	}

	h := newHarness(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := h.do(t, http.MethodPost, "/api/v1/transactions", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if body["code"] != tt.expectedCode {
				t.Errorf("expected code %s, got %v", tt.expectedCode, body["code"])
			}
		})
	}

	if h.injector.State.Transactions.Len() != 0 {
		t.Errorf("expected rejected requests to leave the store empty")
	}
}

func TestGoalEndpoints(t *testing.T) {
	h := newHarness(t, nil)

	w, created := h.do(t, http.MethodPost, "/api/v1/goals", map[string]any{
		"title":         "Bike",
		"target_amount": 1000,
		"color":         "#f97316",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if created["current_amount"] != "0" || created["icon"] == "" {
		t.Errorf("unexpected created goal: %v", created)
	}
	id := created["id"].(string)

	w, contribution := h.do(t, http.MethodPost, "/api/v1/goals/"+id+"/contributions", map[string]any{"amount": 1500})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	goalBody := contribution["goal"].(map[string]any)
	if goalBody["current_amount"] != "1000" || goalBody["progress"] != float64(100) || contribution["clamped"] != true {
		t.Errorf("expected contribution clamped to target, got %v", contribution)
	}

	w, _ = h.do(t, http.MethodPost, "/api/v1/goals/missing/contributions", map[string]any{"amount": 10})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown goal, got %d", w.Code)
	}

	w, _ = h.do(t, http.MethodPost, "/api/v1/goals", map[string]any{"title": "Nothing", "target_amount": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero target, got %d", w.Code)
	}

	w, list := h.do(t, http.MethodGet, "/api/v1/goals", nil)
	if w.Code != http.StatusOK || len(list["goals"].([]any)) != 1 {
		t.Errorf("expected one goal listed, got %d %v", w.Code, list)
	}

	w, presets := h.do(t, http.MethodGet, "/api/v1/goals/presets", nil)
	if w.Code != http.StatusOK || len(presets["icons"].([]any)) == 0 {
		t.Errorf("expected goal presets, got %d %v", w.Code, presets)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	h := newHarness(t, nil)

	for _, body := range []map[string]any{
		{"amount": 2500, "type": "income", "category": "Allowance"},
		{"amount": 150, "type": "expense", "category": "Food"},
		{"amount": 450, "type": "expense", "category": "Transport"},
		{"amount": 1200, "type": "expense", "category": "Shopping"},
	} {
		if w, _ := h.do(t, http.MethodPost, "/api/v1/transactions", body); w.Code != http.StatusCreated {
			t.Fatalf("seed transaction failed: %d %s", w.Code, w.Body.String())
		}
	}

	w, summary := h.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	totals := summary["totals"].(map[string]any)
	if totals["balance"] != "700" || totals["balance_display"] != "₹700" {
		t.Errorf("unexpected totals: %v", totals)
	}

	w, private := h.do(t, http.MethodGet, "/api/v1/dashboard?private=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	privateTotals := private["totals"].(map[string]any)
	if _, ok := privateTotals["balance"]; ok {
		t.Errorf("expected raw amounts to be omitted in private mode, got %v", privateTotals)
	}
	if privateTotals["income_display"] != "₹ ••••" {
		t.Errorf("expected masked income, got %v", privateTotals["income_display"])
	}

	w, breakdown := h.do(t, http.MethodGet, "/api/v1/dashboard/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	categories := breakdown["categories"].([]any)
	if len(categories) != 3 {
		t.Fatalf("expected 3 expense categories, got %v", categories)
	}
	first := categories[0].(map[string]any)
	if first["category"] != "Shopping" || first["percentage"] != 66.67 {
		t.Errorf("expected Shopping at 66.67%%, got %v", first)
	}

	w, _ = h.do(t, http.MethodGet, "/api/v1/dashboard?private=maybe", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad private flag, got %d", w.Code)
	}
}

func TestCategories(t *testing.T) {
	h := newHarness(t, nil)

	w, body := h.do(t, http.MethodGet, "/api/v1/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(body["categories"].([]any)) != 9 || body["custom_label"] != "Other" {
		t.Errorf("unexpected categories body: %v", body)
	}
}

func TestAdvisorEndpoints(t *testing.T) {
	t.Run("answers with collaborator text", func(t *testing.T) {
		advice := &stubAdvice{answer: "Cut down on Myntra."}
		h := newHarness(t, advice)

		w, body := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "Give me a saving tip."})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body["answer"] != "Cut down on Myntra." || body["fallback"] != false {
			t.Errorf("unexpected answer: %v", body)
		}
	})

	t.Run("collaborator failure returns apology", func(t *testing.T) {
		advice := &stubAdvice{err: errors.New("503 service unavailable")}
		h := newHarness(t, advice)

		w, body := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "Can I afford a bike?"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["answer"] != advisor.ConnectionFailureMessage || body["fallback"] != true {
			t.Errorf("expected fallback apology, got %v", body)
		}

		_, status := h.do(t, http.MethodGet, "/api/v1/advisor/status", nil)
		if status["last_failure"] == nil {
			t.Errorf("expected last failure in status, got %v", status)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		h := newHarness(t, nil)

		_, body := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "Hi"})
		if body["answer"] != advisor.MissingCredentialMessage {
			t.Errorf("expected missing credential reply, got %v", body)
		}

		_, status := h.do(t, http.MethodGet, "/api/v1/advisor/status", nil)
		if status["available"] != false || len(status["suggestions"].([]any)) != 3 {
			t.Errorf("unexpected status: %v", status)
		}
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		h := newHarness(t, &stubAdvice{answer: "x"})

		w, body := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "   "})
		if w.Code != http.StatusBadRequest || body["code"] != string(domainerror.ErrCodeEmptyQuery) {
			t.Errorf("expected 400 empty query, got %d %v", w.Code, body)
		}
	})

	t.Run("overlapping question is rejected", func(t *testing.T) {
		advice := &stubAdvice{answer: "done", block: make(chan struct{})}
		h := newHarness(t, advice)

		done := make(chan int, 1)
		go func() {
			w, _ := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "first"})
			done <- w.Code
		}()

		deadline := time.Now().Add(2 * time.Second)
		for !h.injector.AdvisorTracker.IsPending("device-1") {
			if time.Now().After(deadline) {
				t.Fatal("first question never became pending")
			}
			time.Sleep(5 * time.Millisecond)
		}

		w, body := h.do(t, http.MethodPost, "/api/v1/advisor/ask", map[string]any{"query": "second"})
		if w.Code != http.StatusConflict || body["code"] != string(domainerror.ErrCodeAdviceInProgress) {
			t.Errorf("expected 409 in progress, got %d %v", w.Code, body)
		}

		close(advice.block)
		if code := <-done; code != http.StatusOK {
			t.Errorf("expected first question to finish with 200, got %d", code)
		}
	})
}
