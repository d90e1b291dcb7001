// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hivefund/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is a domain-specific error returned when a campaign is not found.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Status   entity.CampaignStatus // Required; listings default to active campaigns.
	Category string                // Optional; empty matches every category.
}

// CampaignRepository defines the standard operations for campaign persistence.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a single campaign by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// List returns campaigns matching the filter, newest first.
	List(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, error)

	// Update modifies an existing campaign.
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes a campaign owned by the given user. Returns
	// ErrCampaignNotFound when no such campaign exists or it belongs to
	// someone else, matching the lookup-miss behavior.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// AddDonationAmount increments the campaign's current amount. Called
	// inside the donation transaction so the total never drifts from the
	// donation rows.
	AddDonationAmount(ctx context.Context, id uuid.UUID, amount int64) error
}
