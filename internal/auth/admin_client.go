package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// AdminClient provides access to the Supabase Admin API for user management.
// It needs the service role key and is only used by the operator CLI.
type AdminClient struct {
	rest restClient
}

// NewAdminClient creates a new Supabase Admin API client.
func NewAdminClient(supabaseURL, serviceKey string) *AdminClient {
	return &AdminClient{rest: newRESTClient(supabaseURL, serviceKey)}
}

// adminUsersPerPage is the page size used when listing users.
const adminUsersPerPage = 100

// CreateUserRequest is the payload for creating a new user
type CreateUserRequest struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// AdminUser is a user as returned by the admin API
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type listUsersResponse struct {
	Users []AdminUser `json:"users"`
}

// CreateUser creates a confirmed user and returns its UUID.
func (c *AdminClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	var user AdminUser
	err := c.rest.do(ctx, http.MethodPost, "/admin/users", "", CreateUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{"role": "admin"},
	}, &user)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// FindUserIDByEmail returns the ID of the user with email, or "" when
// there is none. Pages are walked until a short page ends the listing.
func (c *AdminClient) FindUserIDByEmail(ctx context.Context, email string) (string, error) {
	for page := 1; ; page++ {
		var resp listUsersResponse
		path := fmt.Sprintf("/admin/users?page=%d&per_page=%d", page, adminUsersPerPage)
		if err := c.rest.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
			return "", fmt.Errorf("list users page %d: %w", page, err)
		}
		for _, u := range resp.Users {
			if strings.EqualFold(u.Email, email) {
				return u.ID, nil
			}
		}
		if len(resp.Users) < adminUsersPerPage {
			return "", nil
		}
	}
}

// DeleteUserByEmail deletes the user with email. Missing users are not an error.
func (c *AdminClient) DeleteUserByEmail(ctx context.Context, email string) error {
	id, err := c.FindUserIDByEmail(ctx, email)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	if err := c.rest.do(ctx, http.MethodDelete, "/admin/users/"+id, "", nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
