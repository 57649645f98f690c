package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/maturomero/huellitas-tpo-front/models"
)

type Credentials struct {
	UserID string
	Token  string
}

type authResponse struct {
	UserID      json.Number `json:"userId"`
	AccessToken string      `json:"access_token"`
}

// Authenticate exchanges email/password for a user id and bearer token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/authenticate", nil, "", body, &resp); err != nil {
		return Credentials{}, err
	}
	return Credentials{UserID: resp.UserID.String(), Token: resp.AccessToken}, nil
}

// Register creates a new USER account and authenticates it in one call.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (Credentials, error) {
	body := map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
		"role":     models.RoleUser,
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", body, &resp); err != nil {
		return Credentials{}, err
	}
	return Credentials{UserID: resp.UserID.String(), Token: resp.AccessToken}, nil
}

type profilePayload struct {
	FullName      string `json:"fullName"`
	FullNameSnake string `json:"full_name"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
}

func mapProfile(raw profilePayload) models.Profile {
	name := raw.FullName
	if name == "" {
		name = raw.FullNameSnake
	}
	if name == "" {
		name = raw.Name
	}
	return models.Profile{FullName: name, Email: raw.Email, Role: raw.Role}
}

// FetchProfile loads the user record behind a fresh set of credentials.
func (c *Client) FetchProfile(ctx context.Context, token, userID string) (models.Profile, error) {
	var raw profilePayload
	if err := c.do(ctx, http.MethodGet, "/users/"+userID, nil, token, nil, &raw); err != nil {
		return models.Profile{}, err
	}
	return mapProfile(raw), nil
}
