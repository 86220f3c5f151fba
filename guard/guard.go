package guard

import (
	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
)

// Policy is the declarative access requirement a screen attaches to itself
// through the routing layer.
type Policy uint8

const (
	// PolicyNone renders for everyone, signed in or not.
	PolicyNone Policy = iota
	// PolicyAuthenticated requires any signed-in session.
	PolicyAuthenticated
	// PolicyAdminOnly requires a signed-in session with the admin role.
	PolicyAdminOnly
	// PolicyManagerOnly requires a signed-in session with the manager role.
	PolicyManagerOnly
)

// Outcome is the access decision for one navigation.
type Outcome uint8

const (
	// Allow renders the requested screen.
	Allow Outcome = iota
	// RedirectLogin sends the visitor to the login screen.
	RedirectLogin
	// RedirectHome sends an authenticated but under-privileged visitor to
	// the home screen.
	RedirectHome
)

// String returns the outcome name for logs and tests.
func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decide evaluates policy against the session snapshot. Authentication is
// checked before role: an unauthenticated visitor is always answered with
// RedirectLogin, and RedirectHome is reserved for signed-in sessions whose
// role does not match.
func Decide(snap stayauth.Snapshot, policy Policy) Outcome {
	switch policy {
	case PolicyAuthenticated:
		if !snap.Authenticated {
			return RedirectLogin
		}
	case PolicyAdminOnly:
		return decideRole(snap, stayauth.RoleAdmin)
	case PolicyManagerOnly:
		return decideRole(snap, stayauth.RoleManager)
	}
	return Allow
}

func decideRole(snap stayauth.Snapshot, role string) Outcome {
	if !snap.Authenticated {
		return RedirectLogin
	}
	if snap.User == nil || snap.User.Role != role {
		return RedirectHome
	}
	return Allow
}
