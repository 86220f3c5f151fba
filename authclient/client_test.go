package authclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	return client, srv
}

func TestLoginSuccess(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("expected correlation id header")
		}

		var creds stayauth.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds.Email != "a@b.com" || creds.Password != "secret1" {
			t.Fatalf("credentials = %+v", creds)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": "1", "name": "A", "email": "a@b.com", "role": "user"},
			"token": "tok-1",
		})
	})
	defer srv.Close()

	payload, err := client.Login(context.Background(), stayauth.Credentials{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if payload.Token != "tok-1" {
		t.Fatalf("token = %q, want tok-1", payload.Token)
	}
	if payload.User == nil || payload.User.ID != "1" || payload.User.Role != "user" {
		t.Fatalf("user = %+v", payload.User)
	}
}

func TestLoginFailureCarriesVerbatimMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})
	defer srv.Close()

	_, err := client.Login(context.Background(), stayauth.Credentials{Email: "a@b.com", Password: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", apiErr.Status)
	}
	if apiErr.Error() != "Invalid credentials" {
		t.Fatalf("message = %q, want verbatim server text", apiErr.Error())
	}
}

func TestErrorMessageFallsBackToStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	err := client.ForgotPassword(context.Background(), "a@b.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "auth service returned status 502" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestProfileCallsAttachBearerToken(t *testing.T) {
	var sawGet, sawPut string

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sawGet = r.Header.Get("Authorization")
		case http.MethodPut:
			sawPut = r.Header.Get("Authorization")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{"id": "1", "name": "Renamed", "role": "user"},
		})
	})
	defer srv.Close()

	ctx := context.Background()
	if _, err := client.GetProfile(ctx, "tok-1"); err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	updated, err := client.UpdateProfile(ctx, "tok-1", stayauth.ProfileUpdate{Name: "Renamed"})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}

	if sawGet != "Bearer tok-1" || sawPut != "Bearer tok-1" {
		t.Fatalf("authorization headers = %q / %q", sawGet, sawPut)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("updated name = %q", updated.Name)
	}
}

func TestRegisterReturnsSessionPayload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": "9", "name": "New", "role": "user"},
			"token": "tok-9",
		})
	})
	defer srv.Close()

	payload, err := client.Register(context.Background(), stayauth.RegisterInput{
		Name: "New", Email: "n@b.com", Phone: "0123", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if payload.Token != "tok-9" || payload.User.ID != "9" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestPasswordEndpoints(t *testing.T) {
	var paths []string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	defer srv.Close()

	ctx := context.Background()
	if err := client.ChangePassword(ctx, "tok-1", stayauth.PasswordChange{CurrentPassword: "old", NewPassword: "new"}); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if err := client.ForgotPassword(ctx, "a@b.com"); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}
	if err := client.ResetPassword(ctx, stayauth.PasswordReset{Token: "ch-1", NewPassword: "new"}); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	want := []string{
		"PUT /api/auth/change-password",
		"POST /api/auth/forgot-password",
		"POST /api/auth/reset-password",
	}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("call %d = %q, want %q", i, paths[i], p)
		}
	}
}
