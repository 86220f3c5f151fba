package stayauth

import (
	"context"
	"io"
	"time"

	internalaudit "github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/audit"
	internalmetrics "github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/metrics"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// User is the identity record of the signed-in account.
type User = session.User

// Roles are a closed set; the guard package compares against these exact
// strings.
const (
	// RoleUser is a regular customer account.
	RoleUser = "user"
	// RoleAdmin is a platform administrator account.
	RoleAdmin = "admin"
	// RoleManager is a hotel manager account.
	RoleManager = "manager"
)

// Credentials is the login input.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the account-creation input. The service signs the new
// account in, so registering establishes a session.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdate carries partial profile fields; empty fields are omitted
// from the request and left unchanged server-side. Role is not updatable
// through this surface.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PasswordChange is the input for rotating the signed-in account password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PasswordReset redeems a mailed reset challenge for a new password.
type PasswordReset struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AuthPayload is the success result of login and register: the identity
// record plus its opaque credential.
type AuthPayload struct {
	User  *User
	Token string
}

// AuthService is the remote identity API consumed by the [Manager]. The
// implementation owns transport details; the bearer credential passed to
// the token-carrying methods is attached by the transport, not by the
// session core. authclient.Client is the stock HTTP implementation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (AuthPayload, error)
	Login(ctx context.Context, creds Credentials) (AuthPayload, error)
	GetProfile(ctx context.Context, token string) (*User, error)
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, token string, input PasswordChange) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input PasswordReset) error
}

// Snapshot is a read-only view of the session state at one instant. Guard
// decisions and UI rendering consume it; it never exposes internal state to
// mutation.
type Snapshot struct {
	User          *User
	Token         string
	Authenticated bool
	Loading       bool
	Err           string

	// ExpiresAt is token expiry metadata for JWT-shaped credentials; the
	// zero time for opaque tokens. Informational only.
	ExpiresAt time.Time
}

// AuditEvent is a structured audit record emitted by the manager.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the manager's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess = MetricID(internalmetrics.MetricLoginSuccess)
	// MetricLoginFailure counts rejected or failed logins.
	MetricLoginFailure = MetricID(internalmetrics.MetricLoginFailure)
	// MetricRegisterSuccess counts successful registrations.
	MetricRegisterSuccess = MetricID(internalmetrics.MetricRegisterSuccess)
	// MetricRegisterFailure counts rejected or failed registrations.
	MetricRegisterFailure = MetricID(internalmetrics.MetricRegisterFailure)
	// MetricProfileUpdateSuccess counts successful profile updates.
	MetricProfileUpdateSuccess = MetricID(internalmetrics.MetricProfileUpdateSuccess)
	// MetricProfileUpdateFailure counts failed profile updates.
	MetricProfileUpdateFailure = MetricID(internalmetrics.MetricProfileUpdateFailure)
	// MetricProfileRefreshSuccess counts successful profile refreshes.
	MetricProfileRefreshSuccess = MetricID(internalmetrics.MetricProfileRefreshSuccess)
	// MetricProfileRefreshFailure counts failed profile refreshes.
	MetricProfileRefreshFailure = MetricID(internalmetrics.MetricProfileRefreshFailure)
	// MetricPasswordChangeSuccess counts successful password rotations.
	MetricPasswordChangeSuccess = MetricID(internalmetrics.MetricPasswordChangeSuccess)
	// MetricPasswordChangeFailure counts failed password rotations.
	MetricPasswordChangeFailure = MetricID(internalmetrics.MetricPasswordChangeFailure)
	// MetricPasswordResetRequest counts delivered forgot-password requests.
	MetricPasswordResetRequest = MetricID(internalmetrics.MetricPasswordResetRequest)
	// MetricPasswordResetRequestFailure counts failed forgot-password
	// requests.
	MetricPasswordResetRequestFailure = MetricID(internalmetrics.MetricPasswordResetRequestFailure)
	// MetricPasswordResetConfirmSuccess counts redeemed reset challenges.
	MetricPasswordResetConfirmSuccess = MetricID(internalmetrics.MetricPasswordResetConfirmSuccess)
	// MetricPasswordResetConfirmFailure counts rejected reset challenges.
	MetricPasswordResetConfirmFailure = MetricID(internalmetrics.MetricPasswordResetConfirmFailure)
	// MetricLogout counts logout calls that cleared a session.
	MetricLogout = MetricID(internalmetrics.MetricLogout)
	// MetricHydrateSuccess counts hydrations that restored a session.
	MetricHydrateSuccess = MetricID(internalmetrics.MetricHydrateSuccess)
	// MetricHydrateEmpty counts hydrations that found no persisted pair.
	MetricHydrateEmpty = MetricID(internalmetrics.MetricHydrateEmpty)
	// MetricHydrateCorrupt counts hydrations that discarded a corrupt pair.
	MetricHydrateCorrupt = MetricID(internalmetrics.MetricHydrateCorrupt)

	metricIDCount = internalmetrics.MetricIDCount
)

// Metrics holds atomic counters for one manager instance.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled: cfg.Enabled,
	})
}
