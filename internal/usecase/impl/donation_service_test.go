package impl

import (
	"context"
	"testing"
	"time"

	"hivefund/internal/domain/entity"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/repository"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDonationServiceForTest(donationRepo *mockDonationRepository, campaignRepo *mockCampaignRepository) usecase.DonationUsecase {
	return NewDonationService(DonationServiceParams{
		TxManager: &stubTxManager{factory: &stubRepoFactory{
			donations: donationRepo,
			campaigns: campaignRepo,
		}},
		DonationRepo: donationRepo,
		CampaignRepo: campaignRepo,
		Logger:       newDiscardLogger(),
	})
}

func TestDonationService_CreateDonation_Success(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()
	donorID := uuid.New()
	campaign := &entity.Campaign{ID: campaignID, Status: entity.CampaignStatusActive}

	campaignRepo.On("FindByID", ctx, campaignID).Return(campaign, nil)
	donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(nil)
	campaignRepo.On("AddDonationAmount", ctx, campaignID, int64(2500)).Return(nil)

	donation, err := service.CreateDonation(ctx, &usecase.CreateDonationInput{
		CampaignID: campaignID,
		UserID:     donorID,
		Amount:     2500,
		Anonymous:  true,
		Message:    "Good luck!",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, donation.PaymentStatus)
	assert.True(t, donation.Anonymous)

	campaignRepo.AssertExpectations(t)
	donationRepo.AssertExpectations(t)
}

func TestDonationService_CreateDonation_CampaignMissing(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()

	campaignRepo.On("FindByID", ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

	_, err := service.CreateDonation(ctx, &usecase.CreateDonationInput{
		CampaignID: campaignID,
		UserID:     uuid.New(),
		Amount:     100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotFound))

	donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonationService_CreateDonation_CampaignNotActive(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()
	campaign := &entity.Campaign{ID: campaignID, Status: entity.CampaignStatusCompleted}

	campaignRepo.On("FindByID", ctx, campaignID).Return(campaign, nil)

	_, err := service.CreateDonation(ctx, &usecase.CreateDonationInput{
		CampaignID: campaignID,
		UserID:     uuid.New(),
		Amount:     100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotActive))

	donationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	campaignRepo.AssertNotCalled(t, "AddDonationAmount", mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationService_CreateDonation_AmountBumpFails(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()
	campaign := &entity.Campaign{ID: campaignID, Status: entity.CampaignStatusActive}

	campaignRepo.On("FindByID", ctx, campaignID).Return(campaign, nil)
	donationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donation")).Return(nil)
	campaignRepo.On("AddDonationAmount", ctx, campaignID, int64(100)).Return(errors.New("connection reset"))

	_, err := service.CreateDonation(ctx, &usecase.CreateDonationInput{
		CampaignID: campaignID,
		UserID:     uuid.New(),
		Amount:     100,
	})
	require.Error(t, err)
}

func TestDonationService_ListCampaignDonations(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()
	campaign := &entity.Campaign{ID: campaignID, Status: entity.CampaignStatusActive}
	donations := []*entity.Donation{
		{ID: uuid.New(), CampaignID: campaignID, Amount: 100},
		{ID: uuid.New(), CampaignID: campaignID, Amount: 250},
	}

	campaignRepo.On("FindByID", ctx, campaignID).Return(campaign, nil)
	donationRepo.On("ListByCampaign", ctx, campaignID).Return(donations, nil)

	got, err := service.ListCampaignDonations(ctx, campaignID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDonationService_ListCampaignDonations_UnknownCampaign(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	campaignID := uuid.New()

	campaignRepo.On("FindByID", ctx, campaignID).Return(nil, repository.ErrCampaignNotFound)

	_, err := service.ListCampaignDonations(ctx, campaignID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotFound))
}

func TestDonationService_ListUserDonations(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	donorID := uuid.New()
	history := []*entity.UserDonation{
		{Donation: entity.Donation{ID: uuid.New(), UserID: donorID, Amount: 500}, CampaignTitle: "Save the bees"},
		{Donation: entity.Donation{ID: uuid.New(), UserID: donorID, Amount: 100}, CampaignTitle: "Clean water"},
	}

	donationRepo.On("ListByUser", ctx, donorID).Return(history, nil)

	got, err := service.ListUserDonations(ctx, donorID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Save the bees", got[0].CampaignTitle)
}

func TestDonationService_Leaderboard_AllTime(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	entries := []*entity.LeaderboardEntry{
		{DonorName: "Ada Lovelace", TotalDonated: 9000, DonationCount: 3},
		{DonorName: "Anonymous", TotalDonated: 1200, DonationCount: 5},
	}

	// An empty timeframe aggregates without a lower time bound.
	donationRepo.On("Leaderboard", ctx, repository.LeaderboardFilter{Category: "community"}).Return(entries, nil)

	got, err := service.Leaderboard(ctx, &usecase.LeaderboardInput{Category: "community"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada Lovelace", got[0].DonorName)

	donationRepo.AssertExpectations(t)
}

func TestDonationService_Leaderboard_WeeklyBound(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	ctx := context.Background()
	donationRepo.On("Leaderboard", ctx, mock.MatchedBy(func(filter repository.LeaderboardFilter) bool {
		age := time.Since(filter.Since)

		return age > 7*24*time.Hour-time.Minute && age < 7*24*time.Hour+time.Minute
	})).Return([]*entity.LeaderboardEntry{}, nil)

	_, err := service.Leaderboard(ctx, &usecase.LeaderboardInput{Timeframe: "weekly"})
	require.NoError(t, err)

	donationRepo.AssertExpectations(t)
}

func TestDonationService_Leaderboard_InvalidTimeframe(t *testing.T) {
	donationRepo := new(mockDonationRepository)
	campaignRepo := new(mockCampaignRepository)
	service := newDonationServiceForTest(donationRepo, campaignRepo)

	_, err := service.Leaderboard(context.Background(), &usecase.LeaderboardInput{Timeframe: "hourly"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	donationRepo.AssertNotCalled(t, "Leaderboard", mock.Anything, mock.Anything)
}

func TestLeaderboardSince(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

	daily, err := leaderboardSince("daily", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), daily)

	weekly, err := leaderboardSince("weekly", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), weekly)

	monthly, err := leaderboardSince("monthly", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -30), monthly)

	allTime, err := leaderboardSince("all-time", now)
	require.NoError(t, err)
	assert.True(t, allTime.IsZero())
}
