package flows

import (
	"context"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// SessionPersistence is the durable side of the session pair.
// *session.Store satisfies it.
type SessionPersistence interface {
	Save(ctx context.Context, sess *session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
}

// AuthenticateDeps captures login and register flow dependencies.
type AuthenticateDeps struct {
	Login    func(ctx context.Context, email, password string) (*session.Session, error)
	Register func(ctx context.Context, name, email, phone, password string) (*session.Session, error)
}

// ProfileDeps captures profile fetch/update flow dependencies.
type ProfileDeps struct {
	Update func(ctx context.Context, token, name, email, phone string) (*session.User, error)
	Fetch  func(ctx context.Context, token string) (*session.User, error)
}

// PasswordDeps captures the stateless password flows. None of them touch
// the session pair.
type PasswordDeps struct {
	Change func(ctx context.Context, token, currentPassword, newPassword string) error
	Forgot func(ctx context.Context, email string) error
	Reset  func(ctx context.Context, resetToken, newPassword string) error
}

// LifecycleDeps captures hydrate and logout dependencies. These two are the
// only flows that touch storage directly; session-establishing flows hand
// the pair back to the manager, which persists it under its own lock.
type LifecycleDeps struct {
	Store SessionPersistence
}

// Deps groups flow dependency sets. The root manager builds this once and
// delegates operation methods to the matching flow implementation.
type Deps struct {
	Authenticate AuthenticateDeps
	Profile      ProfileDeps
	Password     PasswordDeps
	Lifecycle    LifecycleDeps
}
