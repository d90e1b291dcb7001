// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hivefund/config"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with HMAC-SHA256 and carry only subject, issued-at and
// expiry; validity is determined purely by signature and expiry, never by a
// server-side lookup.
type jwtService struct {
	secret string        // Shared secret for signing session tokens.
	ttl    time.Duration // Validity window, one day by default.
}

// NewJWTService is the constructor for jwtService.
// The signing secret is injected configuration so it can be rotated and
// swapped out in tests without a process restart.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	// Any explicitly configured window wins, including a negative one,
	// which yields tokens that are already expired. Only an unset window
	// falls back to the one-day default.
	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL != 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token whose subject is the user's ID and
// whose expiry is now plus the configured validity window.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify recomputes the signature over the claim set and checks expiry.
// Expired tokens and signature mismatches map to distinct token errors so
// the boundary can report them deliberately.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Reject anything but the HMAC family before handing out the secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("session token expired")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse session token")
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected claim set")
	}

	userID, err := uuid.Parse(registered.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject claim")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: *registered,
	}, nil
}
