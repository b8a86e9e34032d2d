package models

import "github.com/golang-jwt/jwt/v5"

// SupabaseClaims represents the JWT claims structure from Supabase Auth.
// See: https://supabase.com/docs/guides/auth/jwts
type SupabaseClaims struct {
	jwt.RegisteredClaims                        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string                 `json:"email"`
	Phone                string                 `json:"phone"`
	AppMetadata          map[string]interface{} `json:"app_metadata"`
	UserMetadata         map[string]interface{} `json:"user_metadata"`
	Role                 string                 `json:"role"` // "authenticated" or "anon"
	AAL                  string                 `json:"aal"`  // "aal1" or "aal2"
	SessionID            string                 `json:"session_id"`
	IsAnonymous          bool                   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *SupabaseClaims) GetUserID() string {
	return c.Subject
}

// Identity is the authenticated administrator on whose behalf an operation runs.
// It is passed explicitly into every mutation; the zero value means anonymous.
type Identity struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	SessionID string `json:"session_id,omitempty"`
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}

// IdentityFromClaims converts verified token claims into an Identity.
func IdentityFromClaims(c *SupabaseClaims) Identity {
	if c == nil {
		return Identity{}
	}
	return Identity{
		UserID:    c.GetUserID(),
		Email:     c.Email,
		SessionID: c.SessionID,
	}
}

// AuthSession holds the tokens issued by the auth service after sign-in.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}
