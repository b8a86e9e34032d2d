package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
)

func TestGoTrueClient_SignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Password != "correct horse" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"access_token": "at",
			"refresh_token": "rt",
			"expires_in": 3600,
			"token_type": "bearer",
			"user": {"id": "u-1", "email": "admin@example.com"}
		}`))
	}))
	defer srv.Close()

	c := NewGoTrueClient(srv.URL, "anon-key", "", discardLogger())

	session, err := c.SignInWithPassword(context.Background(), "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "at", session.AccessToken)
	assert.Equal(t, "rt", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "u-1", session.User.ID)

	_, err = c.SignInWithPassword(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid login credentials", apiErr.Message)
}

func TestGoTrueClient_RefreshSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body refreshRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch body.RefreshToken {
		case "rt-1":
			_, _ = w.Write([]byte(`{"access_token": "at-2", "refresh_token": "rt-2", "expires_in": 3600,
				"user": {"id": "u-1", "email": "admin@example.com"}}`))
		case "empty":
			_, _ = w.Write([]byte(`{"refresh_token": "rt-3"}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid Refresh Token: Already Used"}`))
		}
	}))
	defer srv.Close()

	c := NewGoTrueClient(srv.URL, "anon-key", "", discardLogger())

	session, err := c.RefreshSession(context.Background(), "rt-1")
	require.NoError(t, err)
	assert.Equal(t, "at-2", session.AccessToken)
	assert.Equal(t, "rt-2", session.RefreshToken)

	_, err = c.RefreshSession(context.Background(), "empty")
	assert.Error(t, err)

	_, err = c.RefreshSession(context.Background(), "used")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGoTrueClient_SignUp(t *testing.T) {
	var gotRedirect string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		gotRedirect = r.URL.Query().Get("redirect_to")

		var body credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Email == "taken@example.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"u-2","email":"new@example.com"}`))
	}))
	defer srv.Close()

	c := NewGoTrueClient(srv.URL, "anon-key", "http://localhost:3000/admin", discardLogger())

	require.NoError(t, c.SignUp(context.Background(), "new@example.com", "password123"))
	assert.Equal(t, "http://localhost:3000/admin", gotRedirect)

	err := c.SignUp(context.Background(), "taken@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGoTrueClient_SignOutAndGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/auth/v1/logout":
			if token != "Bearer live" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case "/auth/v1/user":
			if token != "Bearer live" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":"u-1","email":"admin@example.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewGoTrueClient(srv.URL, "anon-key", "", discardLogger())
	ctx := context.Background()

	assert.NoError(t, c.SignOut(ctx, "live"))
	assert.NoError(t, c.SignOut(ctx, "stale"), "stale tokens count as signed out")

	who, err := c.GetUser(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "u-1", who.UserID)

	_, err = c.GetUser(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGoTrueClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewGoTrueClient(srv.URL, "anon-key", "", discardLogger())
	_, err := c.SignInWithPassword(context.Background(), "a@b.co", "x")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestAdminClient_CreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/admin/users":
			var body CreateUserRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.True(t, body.EmailConfirm)
			_, _ = w.Write([]byte(`{"id":"u-9","email":"` + body.Email + `"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/auth/v1/admin/users":
			_, _ = w.Write([]byte(`{"users":[{"id":"u-9","email":"Admin@Example.com"}]}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/auth/v1/admin/users/u-9":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewAdminClient(srv.URL+"/", "service-key")
	ctx := context.Background()

	id, err := c.CreateUser(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)

	id, err = c.FindUserIDByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)

	id, err = c.FindUserIDByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, id)

	assert.NoError(t, c.DeleteUserByEmail(ctx, "admin@example.com"))
	assert.NoError(t, c.DeleteUserByEmail(ctx, "nobody@example.com"))
}

func TestAdminClient_FindUserIDByEmail_Paginates(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, strconv.Itoa(adminUsersPerPage), r.URL.Query().Get("per_page"))
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		var resp listUsersResponse
		switch page {
		case "1":
			for i := 0; i < adminUsersPerPage; i++ {
				resp.Users = append(resp.Users, AdminUser{ID: fmt.Sprintf("u-%d", i), Email: fmt.Sprintf("user%d@example.com", i)})
			}
		case "2":
			resp.Users = []AdminUser{{ID: "u-admin", Email: "admin@example.com"}}
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewAdminClient(srv.URL, "service-key")
	ctx := context.Background()

	id, err := c.FindUserIDByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-admin", id)
	assert.Equal(t, []string{"1", "2"}, pages)

	pages = nil
	id, err = c.FindUserIDByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, []string{"1", "2"}, pages, "a short page ends the listing")
}
