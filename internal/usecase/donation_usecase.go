package usecase

import (
	"context"

	"hivefund/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDonationInput defines the data required to record a donation.
type CreateDonationInput struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
	Amount     int64
	Anonymous  bool
	Message    string
}

// LeaderboardInput narrows the donor leaderboard.
type LeaderboardInput struct {
	Timeframe string // One of daily, weekly, monthly, all-time; empty means all-time.
	Category  string // Restrict to campaigns of this category; empty means all.
}

// DonationUsecase defines the interface for donation-related business operations.
type DonationUsecase interface {
	// CreateDonation records the donation and bumps the campaign's raised
	// amount in one transaction.
	CreateDonation(ctx context.Context, input *CreateDonationInput) (*entity.Donation, error)

	// ListCampaignDonations returns the donations made to a campaign.
	ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error)

	// ListUserDonations returns the giving history of a user, newest first.
	ListUserDonations(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error)

	// Leaderboard returns the top donors by total donated amount.
	Leaderboard(ctx context.Context, input *LeaderboardInput) ([]*entity.LeaderboardEntry, error)
}
