// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"hivefund/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardFilter narrows the donor leaderboard aggregation.
type LeaderboardFilter struct {
	Since    time.Time // Only donations at or after this instant count; zero means all time.
	Category string    // Restrict to campaigns of this category; empty means all.
}

// DonationRepository defines the standard operations for donation persistence.
type DonationRepository interface {
	// Create persists a new donation.
	Create(ctx context.Context, donation *entity.Donation) error

	// ListByCampaign returns all donations for a campaign, newest first.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error)

	// ListByUser returns the donations made by a user, newest first, each
	// carrying the title of the campaign it funded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error)

	// Leaderboard aggregates donations into the top donors by total amount.
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]*entity.LeaderboardEntry, error)
}
