// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a donation.
type PaymentStatus string

const (
	// PaymentStatusCompleted indicates a settled donation.
	PaymentStatusCompleted PaymentStatus = "completed"
	// PaymentStatusPending indicates a donation awaiting settlement.
	PaymentStatusPending PaymentStatus = "pending"
)

// Donation is a single contribution made by a user to a campaign.
// Creating a donation and bumping the campaign's current amount happen
// within one database transaction.
type Donation struct {
	ID            uuid.UUID     // The unique identifier for the donation.
	CampaignID    uuid.UUID     // The campaign this donation belongs to.
	UserID        uuid.UUID     // The donating user's identifier.
	Amount        int64         // Donated amount in the smallest currency unit.
	PaymentStatus PaymentStatus // Settlement state of the payment.
	Anonymous     bool          // Hides the donor's name in public listings when true.
	Message       string        // Optional message left by the donor.
	CreatedAt     time.Time     // Timestamp of when this donation was made.
}

// UserDonation is a donation joined with the title of the campaign it funds,
// as shown in a donor's own giving history.
type UserDonation struct {
	Donation
	CampaignTitle string
}

// LeaderboardEntry is one row of the donor leaderboard. Donations flagged
// anonymous are pooled under a single "Anonymous" donor name.
type LeaderboardEntry struct {
	DonorName     string
	TotalDonated  int64
	DonationCount int64
}
