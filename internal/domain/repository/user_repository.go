// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hivefund/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when a create hits the unique index on email.
var ErrEmailExists = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user record to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves all users registered under the given email,
	// oldest record first. The unique index on email keeps this to at most
	// one row for records created after the index existed; the explicit
	// ordering makes the tie-break deterministic for any that predate it.
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)

	// List returns every user record in the store.
	List(ctx context.Context) ([]*entity.User, error)
}
