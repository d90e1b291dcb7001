package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token. A session
// token is a stateless assertion of identity: subject plus expiry, nothing
// persisted server-side.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token for the given user, valid from
	// now until now plus the configured validity window.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its claims. Verification is purely computational; no server-side
	// lookup is involved.
	Verify(tokenString string) (*Claims, error)
}
