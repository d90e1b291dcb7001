package handler

import (
	"log/slog"
	"net/http"

	"hivefund/internal/delivery/http/response"
	"hivefund/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// suggestionRequest is the payload for POST /ai/suggestions.
type suggestionRequest struct {
	Prompt string `json:"prompt" validate:"required,max=4000"`
}

// suggestionResponse carries the model's reply.
type suggestionResponse struct {
	Suggestions string `json:"suggestions"`
}

// SuggestionHandler holds dependencies for AI suggestion handlers.
type SuggestionHandler struct {
	uc     usecase.SuggestionUsecase
	logger *slog.Logger
}

// NewSuggestionHandler is the constructor for SuggestionHandler, injected by Fx.
func NewSuggestionHandler(uc usecase.SuggestionUsecase, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Suggest handles the AI suggestion request.
func (h *SuggestionHandler) Suggest(c echo.Context) error {
	var req suggestionRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind suggestion request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	suggestions, err := h.uc.Suggest(c.Request().Context(), req.Prompt)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestionResponse{Suggestions: suggestions}, "Suggestions generated successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
