package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
	"github.com/google/uuid"
)

const (
	registerPath       = "/api/auth/register"
	loginPath          = "/api/auth/login"
	profilePath        = "/api/auth/profile"
	changePasswordPath = "/api/auth/change-password"
	forgotPasswordPath = "/api/auth/forgot-password"
	resetPasswordPath  = "/api/auth/reset-password"

	defaultCallTimeout = 10 * time.Second
)

// Config carries the transport settings for [New].
type Config struct {
	// BaseURL is the auth service origin, e.g. "https://api.example.com".
	BaseURL string
	// Timeout bounds each call when HTTPClient is nil. Zero means the
	// 10-second default.
	Timeout time.Duration
	// HTTPClient overrides the internally built client; tests and callers
	// with custom transports inject one here.
	HTTPClient *http.Client
}

// Client implements [stayauth.AuthService] over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates an auth service client for the given origin.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultCallTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (p userPayload) toUser() *stayauth.User {
	return &stayauth.User{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Role:  p.Role,
	}
}

// Register creates an account. The service signs the new account in, so a
// token comes back alongside the user record.
func (c *Client) Register(ctx context.Context, input stayauth.RegisterInput) (stayauth.AuthPayload, error) {
	var resp struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.call(ctx, http.MethodPost, registerPath, "", input, &resp); err != nil {
		return stayauth.AuthPayload{}, err
	}
	return stayauth.AuthPayload{User: resp.User.toUser(), Token: resp.Token}, nil
}

// Login exchanges credentials for a user record and token.
func (c *Client) Login(ctx context.Context, creds stayauth.Credentials) (stayauth.AuthPayload, error) {
	var resp struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.call(ctx, http.MethodPost, loginPath, "", creds, &resp); err != nil {
		return stayauth.AuthPayload{}, err
	}
	return stayauth.AuthPayload{User: resp.User.toUser(), Token: resp.Token}, nil
}

// GetProfile fetches the profile behind the given credential.
func (c *Client) GetProfile(ctx context.Context, token string) (*stayauth.User, error) {
	var resp struct {
		User userPayload `json:"user"`
	}
	if err := c.call(ctx, http.MethodGet, profilePath, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User.toUser(), nil
}

// UpdateProfile submits partial profile fields and returns the updated
// record. Empty fields are omitted and left unchanged server-side.
func (c *Client) UpdateProfile(ctx context.Context, token string, update stayauth.ProfileUpdate) (*stayauth.User, error) {
	var resp struct {
		User userPayload `json:"user"`
	}
	if err := c.call(ctx, http.MethodPut, profilePath, token, update, &resp); err != nil {
		return nil, err
	}
	return resp.User.toUser(), nil
}

// ChangePassword rotates the password for the signed-in account.
func (c *Client) ChangePassword(ctx context.Context, token string, input stayauth.PasswordChange) error {
	return c.call(ctx, http.MethodPut, changePasswordPath, token, input, nil)
}

// ForgotPassword asks the service to mail a reset challenge.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.call(ctx, http.MethodPost, forgotPasswordPath, "", body, nil)
}

// ResetPassword redeems a reset challenge for a new password.
func (c *Client) ResetPassword(ctx context.Context, input stayauth.PasswordReset) error {
	return c.call(ctx, http.MethodPost, resetPasswordPath, "", input, nil)
}

func (c *Client) call(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("auth service returned status %d", resp.StatusCode)
}
