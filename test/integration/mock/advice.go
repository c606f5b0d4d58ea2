//go:build integration

package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/finz/backend/internal/application/adapter"
)

// Advice is a scripted text-generation collaborator.
type Advice struct {
	mu        sync.Mutex
	available bool
	answer    string
	err       error
	prompts   []string
}

// NewAdvice returns an unconfigured collaborator.
func NewAdvice() *Advice {
	return &Advice{}
}

// Reset clears the script and the recorded prompts.
func (a *Advice) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.available = false
	a.answer = ""
	a.err = nil
	a.prompts = nil
}

// Answer makes the collaborator reply with text.
func (a *Advice) Answer(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.available = true
	a.answer = text
	a.err = nil
}

// Fail makes the collaborator return an error with the given message.
func (a *Advice) Fail(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.available = true
	a.answer = ""
	a.err = errors.New(message)
}

// Prompts returns the prompts received so far.
func (a *Advice) Prompts() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.prompts))
	copy(out, a.prompts)
	return out
}

// GenerateAdvice implements adapter.AdviceService.
func (a *Advice) GenerateAdvice(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prompts = append(a.prompts, request.Prompt)
	return a.answer, a.err
}

// IsAvailable implements adapter.AdviceService.
func (a *Advice) IsAvailable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.available
}
