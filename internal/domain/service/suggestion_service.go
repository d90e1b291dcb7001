package service

import "context"

// SuggestionService defines the interface for generating AI campaign
// suggestions. The concrete implementation relays the prompt to a remote
// chat-completion API.
type SuggestionService interface {
	// Generate returns the model's suggestion text for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
