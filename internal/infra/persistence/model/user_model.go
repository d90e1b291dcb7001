// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique index on email enforces
// one account per email at the store level; the application additionally
// pre-checks inside the registration transaction.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	PostCode     string    `gorm:"type:varchar(20);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
