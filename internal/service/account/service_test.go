package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

type fakeAuthClient struct {
	signInErr  error
	signUpErr  error
	signUps    int
	signOuts   []string
	identities map[string]models.Identity
}

func (f *fakeAuthClient) SignInWithPassword(_ context.Context, email, _ string) (*models.AuthSession, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	s := &models.AuthSession{AccessToken: "at-" + email}
	s.User.ID = "u-1"
	s.User.Email = email
	return s, nil
}

func (f *fakeAuthClient) SignUp(context.Context, string, string) error {
	f.signUps++
	return f.signUpErr
}

func (f *fakeAuthClient) SignOut(_ context.Context, token string) error {
	f.signOuts = append(f.signOuts, token)
	return nil
}

func (f *fakeAuthClient) GetUser(_ context.Context, token string) (models.Identity, error) {
	who, ok := f.identities[token]
	if !ok {
		return models.Identity{}, domain.ErrUnauthorized
	}
	return who, nil
}

func newTestService(client *fakeAuthClient) services.AccountService {
	return NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSignIn(t *testing.T) {
	client := &fakeAuthClient{}
	svc := newTestService(client)

	session, err := svc.SignIn(context.Background(), &services.SignInRequest{Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "at-admin@example.com", session.AccessToken)
}

func TestSignIn_MissingFields(t *testing.T) {
	svc := newTestService(&fakeAuthClient{})

	for _, req := range []*services.SignInRequest{
		nil,
		{Email: "admin@example.com"},
		{Password: "pw"},
	} {
		_, err := svc.SignIn(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.EqualError(t, err, "Email and password are required")
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	svc := newTestService(&fakeAuthClient{signInErr: domain.ErrUnauthorized})

	_, err := svc.SignIn(context.Background(), &services.SignInRequest{Email: "a@b.co", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.EqualError(t, err, "Invalid login credentials")
}

func TestSignIn_UpstreamFailure(t *testing.T) {
	svc := newTestService(&fakeAuthClient{signInErr: domain.ErrUpstream})

	_, err := svc.SignIn(context.Background(), &services.SignInRequest{Email: "a@b.co", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *services.SignUpRequest
		wantMsg string
	}{
		{
			name:    "missing confirmation",
			req:     &services.SignUpRequest{Email: "a@b.co", Password: "password1"},
			wantMsg: "All fields are required",
		},
		{
			name:    "mismatch",
			req:     &services.SignUpRequest{Email: "a@b.co", Password: "password1", ConfirmPassword: "password2"},
			wantMsg: "Passwords do not match",
		},
		{
			name:    "too short",
			req:     &services.SignUpRequest{Email: "a@b.co", Password: "short7!", ConfirmPassword: "short7!"},
			wantMsg: "Password must be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeAuthClient{}
			svc := newTestService(client)

			err := svc.SignUp(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Zero(t, client.signUps, "auth service not called")
		})
	}
}

func TestSignUp(t *testing.T) {
	client := &fakeAuthClient{}
	svc := newTestService(client)

	err := svc.SignUp(context.Background(), &services.SignUpRequest{
		Email: "a@b.co", Password: "exactly8", ConfirmPassword: "exactly8",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, client.signUps)
}

func TestSignUp_Conflict(t *testing.T) {
	svc := newTestService(&fakeAuthClient{signUpErr: domain.ErrConflict})

	err := svc.SignUp(context.Background(), &services.SignUpRequest{
		Email: "a@b.co", Password: "password1", ConfirmPassword: "password1",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSignOutAndCurrentIdentity(t *testing.T) {
	who := models.Identity{UserID: "u-1", Email: "admin@example.com"}
	client := &fakeAuthClient{identities: map[string]models.Identity{"live": who}}
	svc := newTestService(client)
	ctx := context.Background()

	require.NoError(t, svc.SignOut(ctx, ""))
	assert.Empty(t, client.signOuts, "no token, nothing to revoke")
	require.NoError(t, svc.SignOut(ctx, "live"))
	assert.Equal(t, []string{"live"}, client.signOuts)

	got, err := svc.CurrentIdentity(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, who, got)

	_, err = svc.CurrentIdentity(ctx, "")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	_, err = svc.CurrentIdentity(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
