package impl

import (
	"context"
	"log/slog"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/domain/entity"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/repository"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	txManager    repository.TransactionManager
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CampaignRepo repository.CampaignRepository
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		txManager:    params.TxManager,
		campaignRepo: params.CampaignRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCampaign opens a new campaign owned by the given user.
func (srv *campaignService) CreateCampaign(ctx context.Context, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	campaign := &entity.Campaign{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		GoalAmount:      input.GoalAmount,
		CurrentAmount:   0,
		Deadline:        input.Deadline,
		BeneficiaryType: input.BeneficiaryType,
		Status:          entity.CampaignStatusActive,
	}

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create campaign", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create campaign")
	}

	srv.log(ctx).Info("Campaign created", slog.Any("campaignID", campaign.ID), slog.Any("userID", input.UserID))

	return campaign, nil
}

// GetCampaign retrieves a single campaign by ID.
func (srv *campaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound.WrapMessage("campaign lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return campaign, nil
}

// ListCampaigns returns campaigns matching the filter. An empty status
// defaults to active campaigns.
func (srv *campaignService) ListCampaigns(ctx context.Context, input *usecase.ListCampaignsInput) ([]*entity.Campaign, error) {
	status := input.Status
	if status == "" {
		status = entity.CampaignStatusActive
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown campaign status: " + status.String())
	}

	campaigns, err := srv.campaignRepo.List(ctx, repository.CampaignFilter{
		Status:   status,
		Category: input.Category,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list campaigns", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

// UpdateCampaign applies the given changes to a campaign the user owns.
func (srv *campaignService) UpdateCampaign(ctx context.Context, input *usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	var updated *entity.Campaign

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campaignRepo := repoFactory.NewCampaignRepository()

		campaign, err := campaignRepo.FindByID(ctx, input.CampaignID)
		if err != nil {
			if errors.Is(err, repository.ErrCampaignNotFound) {
				return domainerrors.ErrCampaignNotFound.WrapMessage("campaign update failed")
			}

			return errors.Wrap(err, "failed to load campaign for update")
		}

		// A campaign owned by someone else looks like a missing campaign to
		// the caller, so existence is never revealed across owners.
		if campaign.UserID != input.UserID {
			return domainerrors.ErrCampaignNotFound.WrapMessage("campaign update failed")
		}

		applyCampaignChanges(campaign, input)
		if !campaign.Status.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown campaign status: " + campaign.Status.String())
		}

		if err := campaignRepo.Update(ctx, campaign); err != nil {
			return errors.Wrap(err, "failed to update campaign")
		}

		updated = campaign

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute campaign update transaction", slog.Any("campaignID", input.CampaignID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute campaign update transaction")
	}

	return updated, nil
}

func applyCampaignChanges(campaign *entity.Campaign, input *usecase.UpdateCampaignInput) {
	if input.Title != nil {
		campaign.Title = *input.Title
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Category != nil {
		campaign.Category = *input.Category
	}
	if input.GoalAmount != nil {
		campaign.GoalAmount = *input.GoalAmount
	}
	if input.Deadline != nil {
		campaign.Deadline = *input.Deadline
	}
	if input.BeneficiaryType != nil {
		campaign.BeneficiaryType = *input.BeneficiaryType
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}
}

// DeleteCampaign removes a campaign the user owns.
func (srv *campaignService) DeleteCampaign(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.campaignRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("campaign delete failed")
		}

		srv.log(ctx).Error("Failed to delete campaign", slog.Any("campaignID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete campaign")
	}

	srv.log(ctx).Info("Campaign deleted", slog.Any("campaignID", id), slog.Any("userID", userID))

	return nil
}
