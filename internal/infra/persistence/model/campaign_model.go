package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	Category        string    `gorm:"type:varchar(100);index"`
	GoalAmount      int64     `gorm:"not null"`
	CurrentAmount   int64     `gorm:"not null;default:0"`
	Deadline        time.Time
	BeneficiaryType string `gorm:"type:varchar(50)"`
	Status          string `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Donations []DonationModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
