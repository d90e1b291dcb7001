package impl

import (
	"context"
	"log/slog"

	deliverycontext "hivefund/internal/delivery/context"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/service"
	"hivefund/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// suggestionService implements the SuggestionUsecase interface.
type suggestionService struct {
	suggester service.SuggestionService
	logger    *slog.Logger
}

// SuggestionServiceParams holds dependencies for SuggestionService, injected by Fx.
type SuggestionServiceParams struct {
	fx.In

	Suggester service.SuggestionService
	Logger    *slog.Logger
}

// NewSuggestionService is the constructor for suggestionService.
func NewSuggestionService(params SuggestionServiceParams) usecase.SuggestionUsecase {
	return &suggestionService{
		suggester: params.Suggester,
		logger:    params.Logger,
	}
}

func (srv *suggestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Suggest forwards the prompt to the model. Upstream failures surface as a
// bad gateway so callers can distinguish them from our own errors.
func (srv *suggestionService) Suggest(ctx context.Context, prompt string) (string, error) {
	suggestions, err := srv.suggester.Generate(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Suggestion request failed", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrSuggestionUpstream, err.Error())
	}

	return suggestions, nil
}
