package advisor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finz/backend/internal/application/adapter"
	"github.com/finz/backend/internal/application/state"
	"github.com/finz/backend/internal/domain/entity"
	domainerror "github.com/finz/backend/internal/domain/error"
	"github.com/finz/backend/internal/domain/valueobject"
)

// stubAdviceService records calls and replies with a canned answer or error.
type stubAdviceService struct {
	mu        sync.Mutex
	available bool
	answer    string
	err       error
	calls     []*adapter.AdviceRequest
	block     chan struct{}
}

func (s *stubAdviceService) GenerateAdvice(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, request)
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	return s.answer, s.err
}

func (s *stubAdviceService) IsAvailable() bool {
	return s.available
}

func (s *stubAdviceService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type fixedSnapshot state.Snapshot

func (f fixedSnapshot) Snapshot() state.Snapshot {
	return state.Snapshot(f)
}

func sampleSnapshot() fixedSnapshot {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	return fixedSnapshot{
		Transactions: state.DemoTransactions(now),
		Goals:        state.DemoGoals(now),
	}
}

func TestGetAdvice(t *testing.T) {
	tests := []struct {
		name           string
		service        *stubAdviceService
		query          string
		expectedAnswer string
		expectFallback bool
		expectCalls    int
		expectErr      error
	}{
		{
			name:           "missing credential short-circuits",
			service:        &stubAdviceService{available: false, answer: "should not be used"},
			query:          "How much did I spend on food?",
			expectedAnswer: MissingCredentialMessage,
			expectFallback: true,
			expectCalls:    0,
		},
		{
			name:           "collaborator error returns apology",
			service:        &stubAdviceService{available: true, err: errors.New("dial tcp: connection refused")},
			query:          "Give me a saving tip.",
			expectedAnswer: ConnectionFailureMessage,
			expectFallback: true,
			expectCalls:    1,
		},
		{
			name:           "empty response returns retry message",
			service:        &stubAdviceService{available: true, answer: "   "},
			query:          "Give me a saving tip.",
			expectedAnswer: EmptyResponseMessage,
			expectFallback: true,
			expectCalls:    1,
		},
		{
			name:           "answer returned verbatim",
			service:        &stubAdviceService{available: true, answer: "Cook at home twice a week 🍳"},
			query:          "Give me a saving tip.",
			expectedAnswer: "Cook at home twice a week 🍳",
			expectCalls:    1,
		},
		{
			name:        "blank query rejected",
			service:     &stubAdviceService{available: true, answer: "unused"},
			query:       "  ",
			expectCalls: 0,
			expectErr:   domainerror.ErrEmptyQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetAdviceUseCase(sampleSnapshot(), tt.service, nil, 0)

			output, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "client-1", Query: tt.query})

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if output.Answer != tt.expectedAnswer {
					t.Errorf("expected answer %q, got %q", tt.expectedAnswer, output.Answer)
				}
				if output.Fallback != tt.expectFallback {
					t.Errorf("expected fallback %v, got %v", tt.expectFallback, output.Fallback)
				}
			}

			if got := tt.service.callCount(); got != tt.expectCalls {
				t.Errorf("expected %d collaborator calls, got %d", tt.expectCalls, got)
			}
		})
	}
}

func TestGetAdvice_NilServiceBehavesAsMissingCredential(t *testing.T) {
	uc := NewGetAdviceUseCase(sampleSnapshot(), nil, nil, 0)

	output, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Answer != MissingCredentialMessage {
		t.Errorf("expected missing credential message, got %q", output.Answer)
	}
}

func TestGetAdvice_RequestShape(t *testing.T) {
	service := &stubAdviceService{available: true, answer: "ok"}
	uc := NewGetAdviceUseCase(sampleSnapshot(), service, nil, DefaultTemperature)

	if _, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "Can I afford a ₹50k bike?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	request := service.calls[0]
	if request.SystemInstruction != SystemInstruction {
		t.Errorf("unexpected system instruction %q", request.SystemInstruction)
	}
	if request.Temperature != DefaultTemperature {
		t.Errorf("expected temperature %v, got %v", DefaultTemperature, request.Temperature)
	}
	if !strings.HasSuffix(request.Prompt, "\n\nUser Question: Can I afford a ₹50k bike?") {
		t.Errorf("expected prompt to end with the question, got %q", request.Prompt)
	}
}

func TestGetAdvice_FailureIsRecordedAndCleared(t *testing.T) {
	tracker := NewPendingTracker()
	service := &stubAdviceService{available: true, err: errors.New("googleapi: Error 429: Resource has been exhausted")}
	uc := NewGetAdviceUseCase(sampleSnapshot(), service, tracker, 0)

	output, _ := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "tip?"})
	if output.Reason == nil || output.Reason.Code != ErrCodeAIRateLimited {
		t.Fatalf("expected rate-limited reason, got %+v", output.Reason)
	}
	if tracker.LastFailure("c") == nil {
		t.Fatal("expected failure to be recorded")
	}

	service.err = nil
	service.answer = "fine"
	if _, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "tip?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracker.LastFailure("c") != nil {
		t.Error("expected failure to be cleared after a successful answer")
	}
}

func TestGetAdvice_RejectsOverlappingRequests(t *testing.T) {
	service := &stubAdviceService{available: true, answer: "slow answer", block: make(chan struct{})}
	tracker := NewPendingTracker()
	uc := NewGetAdviceUseCase(sampleSnapshot(), service, tracker, 0)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "first"})
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for service.callCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first request never reached the collaborator")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "second"})
	if !errors.Is(err, domainerror.ErrAdviceInProgress) {
		t.Errorf("expected ErrAdviceInProgress, got %v", err)
	}

	otherService := &stubAdviceService{available: true, answer: "ok"}
	other := NewGetAdviceUseCase(sampleSnapshot(), otherService, tracker, 0)
	if _, err := other.Execute(context.Background(), GetAdviceInput{ClientID: "someone-else", Query: "hi"}); err != nil {
		t.Errorf("expected other client to proceed, got %v", err)
	}

	close(service.block)
	if err := <-done; err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if tracker.IsPending("c") {
		t.Error("expected pending flag to clear after the answer")
	}
}

func TestGetAdvice_UsesConfiguredTemperature(t *testing.T) {
	tests := []struct {
		name       string
		configured float32
		expected   float32
	}{
		{name: "configured value", configured: 0.2, expected: 0.2},
		{name: "zero is kept", configured: 0, expected: 0},
		{name: "negative falls back to default", configured: -1, expected: DefaultTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubAdviceService{available: true, answer: "ok"}
			uc := NewGetAdviceUseCase(fixedSnapshot{}, service, nil, tt.configured)

			if _, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "hi"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if service.calls[0].Temperature != tt.expected {
				t.Errorf("expected temperature %v, got %v", tt.expected, service.calls[0].Temperature)
			}
		})
	}
}

func TestGetAdvice_SnapshotIsReadOnly(t *testing.T) {
	txStore := state.NewTransactionStore(nil, nil, nil)
	txStore.Add(context.Background(), entity.TransactionDraft{
		Amount:   decimal.NewFromInt(150),
		Type:     entity.TransactionTypeExpense,
		Category: valueobject.CategoryFood,
		Date:     time.Now(),
	})
	appState := &state.AppState{Transactions: txStore, Goals: state.NewGoalStore(nil, nil, nil)}

	uc := NewGetAdviceUseCase(appState, &stubAdviceService{available: true, answer: "ok"}, nil, 0)
	if _, err := uc.Execute(context.Background(), GetAdviceInput{ClientID: "c", Query: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txStore.Len() != 1 {
		t.Errorf("expected store to be untouched, got %d transactions", txStore.Len())
	}
}
