package auth

import "portfolio/internal/domain/models"

// TokenVerifier checks access tokens issued by the auth service.
// Middleware only depends on this, not on how keys are obtained.
type TokenVerifier interface {
	// Verify validates the token and returns the identity it was issued to.
	// Any failure is reported as domain.ErrUnauthorized.
	Verify(tokenString string) (models.Identity, error)

	// Close releases any resources held by the verifier.
	Close() error
}
