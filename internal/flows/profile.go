package flows

import (
	"context"
	"errors"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// ErrNoSession is returned by session-bound flows invoked while signed out.
var ErrNoSession = errors.New("no active session")

// RunUpdateProfile submits partial profile fields and builds the successor
// session. The token and role carry over from the current session
// byte-for-byte; only user fields change. Persistence is the caller's job.
func RunUpdateProfile(ctx context.Context, current *session.Session, name, email, phone string, deps ProfileDeps) (*session.Session, error) {
	if current == nil || current.User == nil {
		return nil, ErrNoSession
	}

	user, err := deps.Update(ctx, current.Token, name, email, phone)
	if err != nil {
		return nil, err
	}

	return carryOver(current, user), nil
}

// RunRefreshProfile re-fetches the profile behind the current token and
// builds the successor session, token unchanged.
func RunRefreshProfile(ctx context.Context, current *session.Session, deps ProfileDeps) (*session.Session, error) {
	if current == nil || current.User == nil {
		return nil, ErrNoSession
	}

	user, err := deps.Fetch(ctx, current.Token)
	if err != nil {
		return nil, err
	}

	return carryOver(current, user), nil
}

// carryOver builds the successor session: fresh user record, same token,
// same expiry, and the role pinned to the session's original role. Role is
// immutable for a session lifetime; a role change requires a fresh login.
func carryOver(current *session.Session, user *session.User) *session.Session {
	next := *user
	next.Role = current.User.Role

	return &session.Session{
		User:      &next,
		Token:     current.Token,
		ExpiresAt: current.ExpiresAt,
	}
}
