package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/domain/entity"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/repository"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donationService implements the DonationUsecase interface.
type donationService struct {
	txManager    repository.TransactionManager
	donationRepo repository.DonationRepository
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	CampaignRepo repository.CampaignRepository
	Logger       *slog.Logger
}

// NewDonationService is the constructor for donationService.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		txManager:    params.TxManager,
		donationRepo: params.DonationRepo,
		campaignRepo: params.CampaignRepo,
		logger:       params.Logger,
	}
}

func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDonation records the donation and bumps the campaign's raised amount
// in one transaction, so the campaign total never drifts from the donation rows.
func (srv *donationService) CreateDonation(ctx context.Context, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	srv.log(ctx).Debug("Recording donation", slog.Any("campaignID", input.CampaignID), slog.Any("userID", input.UserID))

	donation := &entity.Donation{
		ID:            uuid.New(),
		CampaignID:    input.CampaignID,
		UserID:        input.UserID,
		Amount:        input.Amount,
		PaymentStatus: entity.PaymentStatusCompleted,
		Anonymous:     input.Anonymous,
		Message:       input.Message,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campaignRepo := repoFactory.NewCampaignRepository()
		donationRepo := repoFactory.NewDonationRepository()

		campaign, err := campaignRepo.FindByID(ctx, input.CampaignID)
		if err != nil {
			if errors.Is(err, repository.ErrCampaignNotFound) {
				return domainerrors.ErrCampaignNotFound.WrapMessage("donation rejected")
			}

			return errors.Wrap(err, "failed to load campaign for donation")
		}

		if campaign.Status != entity.CampaignStatusActive {
			return domainerrors.ErrCampaignNotActive.WrapMessage("donation rejected")
		}

		if err := donationRepo.Create(ctx, donation); err != nil {
			return errors.Wrap(err, "failed to create donation")
		}

		if err := campaignRepo.AddDonationAmount(ctx, input.CampaignID, input.Amount); err != nil {
			return errors.Wrap(err, "failed to add donation amount to campaign")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute donation transaction", slog.Any("campaignID", input.CampaignID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute donation transaction")
	}

	srv.log(ctx).Info("Donation recorded", slog.Any("donationID", donation.ID), slog.Any("campaignID", input.CampaignID))

	return donation, nil
}

// ListCampaignDonations returns the donations made to a campaign.
func (srv *donationService) ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error) {
	// Verify the campaign exists so a bad ID maps to a lookup miss instead of
	// an empty list.
	if _, err := srv.campaignRepo.FindByID(ctx, campaignID); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound.WrapMessage("donation listing failed")
		}

		return nil, errors.Wrap(err, "failed to load campaign for donation listing")
	}

	donations, err := srv.donationRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		srv.log(ctx).Error("Failed to list donations", slog.Any("campaignID", campaignID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list donations")
	}

	return donations, nil
}

// ListUserDonations returns the giving history of a user, newest first.
func (srv *donationService) ListUserDonations(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error) {
	donations, err := srv.donationRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user donations", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user donations")
	}

	return donations, nil
}

// Leaderboard returns the top donors by total donated amount within the
// requested timeframe and campaign category.
func (srv *donationService) Leaderboard(ctx context.Context, input *usecase.LeaderboardInput) ([]*entity.LeaderboardEntry, error) {
	since, err := leaderboardSince(input.Timeframe, time.Now())
	if err != nil {
		return nil, err
	}

	entries, err := srv.donationRepo.Leaderboard(ctx, repository.LeaderboardFilter{
		Since:    since,
		Category: input.Category,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate leaderboard", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate leaderboard")
	}

	return entries, nil
}

// leaderboardSince translates a timeframe keyword into the earliest instant a
// donation may carry to count. A zero time means no lower bound.
func leaderboardSince(timeframe string, now time.Time) (time.Time, error) {
	switch timeframe {
	case "", "all-time":
		return time.Time{}, nil
	case "daily":
		// Start of the current day, not a rolling 24 hours.
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "weekly":
		return now.AddDate(0, 0, -7), nil
	case "monthly":
		return now.AddDate(0, 0, -30), nil
	default:
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("unknown leaderboard timeframe: " + timeframe)
	}
}
