package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/finz/backend/internal/application/adapter"
	domainerror "github.com/finz/backend/internal/domain/error"
)

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("expected service with key to be available")
	}
}

func TestGeminiService_DefaultModel(t *testing.T) {
	if got := NewGeminiService("key", "").modelName; got != DefaultGeminiModel {
		t.Errorf("expected %s, got %s", DefaultGeminiModel, got)
	}
	if got := NewGeminiService("key", "gemini-custom").modelName; got != "gemini-custom" {
		t.Errorf("expected configured model, got %s", got)
	}
}

func TestGeminiService_GenerateAdviceWithoutKey(t *testing.T) {
	_, err := NewGeminiService("", "").GenerateAdvice(context.Background(), &adapter.AdviceRequest{Prompt: "hi"})
	if !errors.Is(err, domainerror.ErrAdvisorNotConfigured) {
		t.Errorf("expected ErrAdvisorNotConfigured, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{name: "nil response", resp: nil, expected: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, expected: ""},
		{
			name:     "nil content",
			resp:     &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			expected: "",
		},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("Save "), genai.Text("more 💰")}},
			}}},
			expected: "Save more 💰",
		},
		{
			name: "skips non-text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("ok")}},
			}}},
			expected: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(tt.resp); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
