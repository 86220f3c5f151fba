package stayauth

import (
	"context"
	"errors"

	internalaudit "github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/audit"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/flows"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
	"github.com/redis/go-redis/v9"
)

// Builder assembles a [Manager]. Construction is allocation-only; no I/O
// happens until [Manager.Hydrate].
type Builder struct {
	config Config
	redis  redis.UniversalClient

	service   AuthService
	auditSink AuditSink

	built bool
}

// New starts a builder with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the default configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis sets the client for persisted session storage.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithService sets the auth service boundary. authclient.New provides the
// stock HTTP implementation; tests inject stubs.
func (b *Builder) WithService(svc AuthService) *Builder {
	b.service = svc
	return b
}

// WithAuditSink sets the sink receiving audit events when auditing is
// enabled in the configuration.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the wiring and returns the session manager. A builder is
// single-use.
func (b *Builder) Build() (*Manager, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}
	if b.service == nil {
		return nil, errors.New("auth service required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := session.NewStore(b.redis, cfg.Storage.RedisPrefix)
	service := b.service

	deps := flows.Deps{
		Authenticate: flows.AuthenticateDeps{
			Login: func(ctx context.Context, email, password string) (*session.Session, error) {
				payload, err := service.Login(ctx, Credentials{Email: email, Password: password})
				if err != nil {
					return nil, err
				}
				return sessionFromPayload(payload)
			},
			Register: func(ctx context.Context, name, email, phone, password string) (*session.Session, error) {
				payload, err := service.Register(ctx, RegisterInput{
					Name:     name,
					Email:    email,
					Phone:    phone,
					Password: password,
				})
				if err != nil {
					return nil, err
				}
				return sessionFromPayload(payload)
			},
		},
		Profile: flows.ProfileDeps{
			Update: func(ctx context.Context, token, name, email, phone string) (*session.User, error) {
				return service.UpdateProfile(ctx, token, ProfileUpdate{
					Name:  name,
					Email: email,
					Phone: phone,
				})
			},
			Fetch: service.GetProfile,
		},
		Password: flows.PasswordDeps{
			Change: func(ctx context.Context, token, currentPassword, newPassword string) error {
				return service.ChangePassword(ctx, token, PasswordChange{
					CurrentPassword: currentPassword,
					NewPassword:     newPassword,
				})
			},
			Forgot: service.ForgotPassword,
			Reset: func(ctx context.Context, resetToken, newPassword string) error {
				return service.ResetPassword(ctx, PasswordReset{
					Token:       resetToken,
					NewPassword: newPassword,
				})
			},
		},
		Lifecycle: flows.LifecycleDeps{Store: store},
	}

	manager := &Manager{
		config:  cfg,
		flows:   flows.New(deps),
		store:   store,
		audit:   internalaudit.NewDispatcher(internalaudit.Config(cfg.Audit), b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
	}

	b.built = true

	return manager, nil
}

// sessionFromPayload enforces the pairing invariant at the service
// boundary: a session exists only when user and token arrive together.
func sessionFromPayload(payload AuthPayload) (*session.Session, error) {
	if payload.User == nil || payload.Token == "" {
		return nil, ErrServiceContract
	}
	return session.New(payload.User, payload.Token), nil
}
