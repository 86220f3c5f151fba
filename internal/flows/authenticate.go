package flows

import (
	"context"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// RunLogin exchanges credentials for a complete session. The returned pair
// is not yet durable; the caller persists and commits it in one step.
func RunLogin(ctx context.Context, email, password string, deps AuthenticateDeps) (*session.Session, error) {
	return deps.Login(ctx, email, password)
}

// RunRegister creates an account and, because the service signs new
// accounts in, yields a session exactly like RunLogin.
func RunRegister(ctx context.Context, name, email, phone, password string, deps AuthenticateDeps) (*session.Session, error) {
	return deps.Register(ctx, name, email, phone, password)
}
