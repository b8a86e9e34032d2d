package session

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"portfolio/internal/domain/models"
)

const (
	cookieName      = "portfolio_admin"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyEmail        = "email"
)

// Store keeps the admin's auth tokens in a signed cookie.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a cookie store signed with secret. secure marks the
// cookie HTTPS-only.
func NewStore(secret string, secure bool) (*Store, error) {
	if len(secret) < 32 {
		return nil, errors.New("session secret must be at least 32 bytes")
	}
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}, nil
}

// Save writes the tokens of a freshly signed-in session.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, auth *models.AuthSession) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values[keyAccessToken] = auth.AccessToken
	sess.Values[keyRefreshToken] = auth.RefreshToken
	sess.Values[keyUserID] = auth.User.ID
	sess.Values[keyEmail] = auth.User.Email
	return sess.Save(r, w)
}

// AccessToken returns the stored access token, or "" when there is no
// valid session cookie.
func (s *Store) AccessToken(r *http.Request) string {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[keyAccessToken].(string)
	return token
}

// RefreshToken returns the stored refresh token, or "".
func (s *Store) RefreshToken(r *http.Request) string {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[keyRefreshToken].(string)
	return token
}

// Clear expires the session cookie.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
