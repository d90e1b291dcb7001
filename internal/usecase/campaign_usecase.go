package usecase

import (
	"context"
	"time"

	"hivefund/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput defines the data required to open a new campaign.
type CreateCampaignInput struct {
	UserID          uuid.UUID
	Title           string
	Description     string
	Category        string
	GoalAmount      int64
	Deadline        time.Time
	BeneficiaryType string
}

// UpdateCampaignInput carries the mutable fields of a campaign. Nil pointers
// leave the current value untouched.
type UpdateCampaignInput struct {
	CampaignID      uuid.UUID
	UserID          uuid.UUID
	Title           *string
	Description     *string
	Category        *string
	GoalAmount      *int64
	Deadline        *time.Time
	BeneficiaryType *string
	Status          *entity.CampaignStatus
}

// ListCampaignsInput narrows the campaign listing.
type ListCampaignsInput struct {
	Status   entity.CampaignStatus
	Category string
}

// CampaignUsecase defines the interface for campaign-related business operations.
type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	ListCampaigns(ctx context.Context, input *ListCampaignsInput) ([]*entity.Campaign, error)
	UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*entity.Campaign, error)
	DeleteCampaign(ctx context.Context, id, userID uuid.UUID) error
}
