// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceRequest is a single prompt sent to the text-generation collaborator.
type AdviceRequest struct {
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

// AdviceService defines the interface for the external text-generation collaborator.
type AdviceService interface {
	// GenerateAdvice returns the collaborator's text response verbatim.
	// An empty string with a nil error means the collaborator answered with no text.
	GenerateAdvice(ctx context.Context, request *AdviceRequest) (string, error)

	// IsAvailable reports whether the collaborator has a credential configured.
	IsAvailable() bool
}
