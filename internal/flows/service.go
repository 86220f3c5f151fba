package flows

import (
	"context"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// Service is the centralized flow runner built once by the root manager.
type Service struct {
	deps Deps
}

// New returns a flow service with immutable dependency wiring.
func New(deps Deps) Service {
	return Service{deps: deps}
}

// Initialized reports whether the service has been wired with flow deps.
func (s Service) Initialized() bool {
	return s.deps.Authenticate.Login != nil
}

func (s Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	return RunLogin(ctx, email, password, s.deps.Authenticate)
}

func (s Service) Register(ctx context.Context, name, email, phone, password string) (*session.Session, error) {
	return RunRegister(ctx, name, email, phone, password, s.deps.Authenticate)
}

func (s Service) UpdateProfile(ctx context.Context, current *session.Session, name, email, phone string) (*session.Session, error) {
	return RunUpdateProfile(ctx, current, name, email, phone, s.deps.Profile)
}

func (s Service) RefreshProfile(ctx context.Context, current *session.Session) (*session.Session, error) {
	return RunRefreshProfile(ctx, current, s.deps.Profile)
}

func (s Service) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	return RunChangePassword(ctx, token, currentPassword, newPassword, s.deps.Password)
}

func (s Service) ForgotPassword(ctx context.Context, email string) error {
	return RunForgotPassword(ctx, email, s.deps.Password)
}

func (s Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return RunResetPassword(ctx, resetToken, newPassword, s.deps.Password)
}

func (s Service) Hydrate(ctx context.Context) (*session.Session, error) {
	return RunHydrate(ctx, s.deps.Lifecycle)
}

func (s Service) Logout(ctx context.Context) error {
	return RunLogout(ctx, s.deps.Lifecycle)
}
