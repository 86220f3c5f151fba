package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
)

func snapshotFor(role string) stayauth.Snapshot {
	return stayauth.Snapshot{
		User:          &stayauth.User{ID: "u-1", Role: role},
		Token:         "tok-1",
		Authenticated: true,
	}
}

func TestDecide(t *testing.T) {
	anonymous := stayauth.Snapshot{}

	cases := []struct {
		name   string
		snap   stayauth.Snapshot
		policy Policy
		want   Outcome
	}{
		{"public screen anonymous", anonymous, PolicyNone, Allow},
		{"public screen signed in", snapshotFor(stayauth.RoleUser), PolicyNone, Allow},
		{"protected screen anonymous", anonymous, PolicyAuthenticated, RedirectLogin},
		{"protected screen signed in", snapshotFor(stayauth.RoleUser), PolicyAuthenticated, Allow},
		{"admin screen admin", snapshotFor(stayauth.RoleAdmin), PolicyAdminOnly, Allow},
		{"admin screen plain user", snapshotFor(stayauth.RoleUser), PolicyAdminOnly, RedirectHome},
		{"admin screen manager", snapshotFor(stayauth.RoleManager), PolicyAdminOnly, RedirectHome},
		{"manager screen manager", snapshotFor(stayauth.RoleManager), PolicyManagerOnly, Allow},
		{"manager screen plain user", snapshotFor(stayauth.RoleUser), PolicyManagerOnly, RedirectHome},
		{"manager screen anonymous", anonymous, PolicyManagerOnly, RedirectLogin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.snap, tc.policy); got != tc.want {
				t.Fatalf("Decide() = %v, want %v", got, tc.want)
			}
		})
	}
}

// Authentication is checked strictly before role: anonymous visitors go to
// login even on role-gated screens, never to home.
func TestDecideAuthenticationBeforeRole(t *testing.T) {
	if got := Decide(stayauth.Snapshot{}, PolicyAdminOnly); got != RedirectLogin {
		t.Fatalf("anonymous admin request = %v, want RedirectLogin", got)
	}
}

type fixedSource struct {
	snap stayauth.Snapshot
}

func (f fixedSource) Snapshot() stayauth.Snapshot { return f.snap }

func TestProtectRedirects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name         string
		snap         stayauth.Snapshot
		policy       Policy
		wantStatus   int
		wantLocation string
	}{
		{"allow passes through", snapshotFor(stayauth.RoleAdmin), PolicyAdminOnly, http.StatusOK, ""},
		{"anonymous to login", stayauth.Snapshot{}, PolicyAuthenticated, http.StatusFound, "/login"},
		{"wrong role to home", snapshotFor(stayauth.RoleUser), PolicyAdminOnly, http.StatusFound, "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := Protect(fixedSource{tc.snap}, tc.policy, "/login", "/")(next)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if loc := rec.Header().Get("Location"); loc != tc.wantLocation {
				t.Fatalf("location = %q, want %q", loc, tc.wantLocation)
			}
		})
	}
}

// Each navigation re-evaluates the live snapshot; a logout between requests
// flips the same handler from allow to redirect.
func TestProtectReEvaluatesPerRequest(t *testing.T) {
	source := &switchableSource{snap: snapshotFor(stayauth.RoleUser)}
	handler := Protect(source, PolicyAuthenticated, "/login", "/")(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	source.snap = stayauth.Snapshot{}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("post-logout status = %d, want 302", rec.Code)
	}
}

type switchableSource struct {
	snap stayauth.Snapshot
}

func (s *switchableSource) Snapshot() stayauth.Snapshot { return s.snap }
