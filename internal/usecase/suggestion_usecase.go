package usecase

import "context"

// SuggestionUsecase defines the interface for AI-backed suggestion operations.
type SuggestionUsecase interface {
	// Suggest forwards the prompt to the configured model and returns its reply.
	Suggest(ctx context.Context, prompt string) (string, error)
}
