// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account record. The identifier is generated at
// registration and stays stable for the lifetime of the record; email is a
// secondary lookup key backed by a unique index.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, generated at registration.
	FullName     string    // The user's display name or real name.
	Email        string    // The login identifier; unique across accounts.
	PasswordHash string    // The bcrypt hash of the password. The plaintext never crosses into storage.
	Address      string    // Postal street address.
	PostCode     string    // Postal code.
	Country      string    // Country of residence.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// PublicUser is the portion of a User that is safe to echo back to clients.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	PostCode string    `json:"post_code"`
	Country  string    `json:"country"`
}

// Public strips the password hash and internal timestamps from a User.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Address:  u.Address,
		PostCode: u.PostCode,
		Country:  u.Country,
	}
}
