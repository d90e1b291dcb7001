package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table.
type DonationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	CampaignID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	Anonymous     bool      `gorm:"not null;default:false"`
	Message       string    `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
