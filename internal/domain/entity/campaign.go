// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of a fundraising campaign.
type CampaignStatus string

const (
	// CampaignStatusActive indicates a campaign that accepts donations.
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusCompleted indicates a campaign that reached its goal or deadline.
	CampaignStatusCompleted CampaignStatus = "completed"
	// CampaignStatusCancelled indicates a campaign withdrawn by its owner.
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// String returns the string representation of the CampaignStatus.
func (s CampaignStatus) String() string {
	return string(s)
}

// IsValid checks if the CampaignStatus is a valid value.
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	default:
		return false
	}
}

// Campaign is a fundraising campaign owned by a registered user.
type Campaign struct {
	ID              uuid.UUID      // The unique identifier for the campaign.
	UserID          uuid.UUID      // The owning user's identifier.
	Title           string         // Short headline shown in listings.
	Description     string         // Full campaign story.
	Category        string         // Free-form category used for filtering.
	GoalAmount      int64          // Fundraising goal in the smallest currency unit.
	CurrentAmount   int64          // Total donated so far, maintained transactionally with donations.
	Deadline        time.Time      // Date after which the campaign stops accepting donations.
	BeneficiaryType string         // Who the funds are raised for, e.g. "myself", "charity".
	Status          CampaignStatus // Lifecycle state; only active campaigns accept donations.
	CreatedAt       time.Time      // Timestamp of when this campaign was created.
	UpdatedAt       time.Time      // Timestamp of the last modification.
}
