// Package ai implements the suggestion service on top of the OpenAI chat completion API.
package ai

import (
	"context"
	"log/slog"

	"hivefund/config"
	"hivefund/internal/domain/service"
	"hivefund/internal/errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are an AI assistant."

type openAISuggester struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAISuggester creates a suggestion service that proxies prompts to the
// configured chat completion endpoint.
func NewOpenAISuggester(cfg *config.Config, logger *slog.Logger) (service.SuggestionService, error) {
	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		return nil, errors.New("openai configuration with api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAI.APIKey)}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAI.BaseURL))
	}

	return &openAISuggester{
		client: openai.NewClient(opts...),
		model:  cfg.OpenAI.Model,
		logger: logger,
	}, nil
}

// Generate sends the user prompt to the upstream model and returns the first
// completion choice verbatim.
func (s *openAISuggester) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "chat completion request failed", slog.Any("error", err))

		return "", errors.Wrap(err, "chat completion request failed")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
