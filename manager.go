package stayauth

import (
	"context"
	"errors"
	"sync"
	"time"

	internalaudit "github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/audit"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/flows"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// Manager is the single source of truth for the signed-in identity. It
// owns the in-memory session, keeps it in lockstep with persisted storage,
// and is the only writer of either.
//
// Manager instances are built through [Builder.Build], hydrated once via
// [Hydrate], and then shared; all methods are safe for concurrent use.
type Manager struct {
	config  Config
	flows   flows.Service
	store   flows.SessionPersistence
	audit   *internalaudit.Dispatcher
	metrics *Metrics

	mu      sync.Mutex
	current *session.Session
	loading bool
	lastErr string
}

// Hydrate loads the persisted pair into memory. Call once at process
// start. An empty store leaves the manager signed out; a corrupt pair is
// discarded (the store clears it) and the manager starts signed out.
func (m *Manager) Hydrate(ctx context.Context) error {
	if m == nil || !m.flows.Initialized() {
		return ErrManagerNotReady
	}

	sess, err := m.flows.Hydrate(ctx)
	switch {
	case errors.Is(err, ErrSessionCorrupt):
		m.metricInc(MetricHydrateCorrupt)
		m.emitAudit(ctx, auditEventHydrate, "", false, err, nil)
		m.commitMemory(nil)
		return nil
	case err != nil:
		return err
	case sess == nil:
		m.metricInc(MetricHydrateEmpty)
		m.commitMemory(nil)
		return nil
	}

	m.metricInc(MetricHydrateSuccess)
	m.emitAudit(ctx, auditEventHydrate, sess.User.ID, true, nil, nil)
	m.commitMemory(sess)
	return nil
}

// Login exchanges credentials for a session. On success the pair is
// persisted and committed to memory in one critical section; on failure the
// previous session is untouched and the verbatim service message is
// recorded as the snapshot error.
func (m *Manager) Login(ctx context.Context, creds Credentials) (Snapshot, error) {
	if m == nil || !m.flows.Initialized() {
		return Snapshot{}, ErrManagerNotReady
	}

	m.begin()
	sess, err := m.flows.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		m.fail(err)
	} else {
		err = m.commitSession(ctx, sess)
	}
	if err != nil {
		m.metricInc(MetricLoginFailure)
		m.emitAudit(ctx, auditEventLoginFailure, "", false, err, func() map[string]string {
			return map[string]string{"email": creds.Email}
		})
		return m.Snapshot(), err
	}

	m.metricInc(MetricLoginSuccess)
	m.emitAudit(ctx, auditEventLoginSuccess, sess.User.ID, true, nil, nil)
	return m.Snapshot(), nil
}

// Register creates an account and, because the service signs new accounts
// in, establishes a session under the same contract as [Login].
func (m *Manager) Register(ctx context.Context, input RegisterInput) (Snapshot, error) {
	if m == nil || !m.flows.Initialized() {
		return Snapshot{}, ErrManagerNotReady
	}

	m.begin()
	sess, err := m.flows.Register(ctx, input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		m.fail(err)
	} else {
		err = m.commitSession(ctx, sess)
	}
	if err != nil {
		m.metricInc(MetricRegisterFailure)
		m.emitAudit(ctx, auditEventRegisterFailure, "", false, err, func() map[string]string {
			return map[string]string{"email": input.Email}
		})
		return m.Snapshot(), err
	}

	m.metricInc(MetricRegisterSuccess)
	m.emitAudit(ctx, auditEventRegisterSuccess, sess.User.ID, true, nil, nil)
	return m.Snapshot(), nil
}

// Logout erases the persisted pair and resets the in-memory state to
// signed out. It is synchronous, idempotent, and makes no network call:
// the service's tokens are not revocable through this boundary. When the
// storage delete fails, memory keeps the session so the two stores stay
// consistent; the caller sees the error and can retry.
func (m *Manager) Logout(ctx context.Context) error {
	if m == nil || !m.flows.Initialized() {
		return ErrManagerNotReady
	}

	m.mu.Lock()
	hadSession := m.current != nil
	userID := ""
	if hadSession {
		userID = m.current.User.ID
	}
	err := m.flows.Logout(ctx)
	m.loading = false
	if err != nil {
		m.lastErr = err.Error()
	} else {
		m.current = nil
		m.lastErr = ""
	}
	m.mu.Unlock()

	if hadSession {
		if err == nil {
			m.metricInc(MetricLogout)
		}
		m.emitAudit(ctx, auditEventLogout, userID, err == nil, err, nil)
	}
	return err
}

// UpdateProfile submits partial profile fields. On success the refreshed
// user record replaces the current one in storage and memory; token, role,
// and expiry metadata are untouched. On failure nothing changes.
func (m *Manager) UpdateProfile(ctx context.Context, update ProfileUpdate) (Snapshot, error) {
	if m == nil || !m.flows.Initialized() {
		return Snapshot{}, ErrManagerNotReady
	}

	current := m.beginWithSession()
	sess, err := m.flows.UpdateProfile(ctx, current, update.Name, update.Email, update.Phone)
	if err != nil {
		m.fail(err)
	} else {
		err = m.commitSession(ctx, sess)
	}
	if err != nil {
		m.metricInc(MetricProfileUpdateFailure)
		m.emitAudit(ctx, auditEventProfileUpdateFailure, userIDOf(current), false, err, nil)
		return m.Snapshot(), err
	}

	m.metricInc(MetricProfileUpdateSuccess)
	m.emitAudit(ctx, auditEventProfileUpdateSuccess, sess.User.ID, true, nil, nil)
	return m.Snapshot(), nil
}

// RefreshProfile re-fetches the profile behind the current token and
// persists it, token unchanged.
func (m *Manager) RefreshProfile(ctx context.Context) (Snapshot, error) {
	if m == nil || !m.flows.Initialized() {
		return Snapshot{}, ErrManagerNotReady
	}

	current := m.beginWithSession()
	sess, err := m.flows.RefreshProfile(ctx, current)
	if err != nil {
		m.fail(err)
	} else {
		err = m.commitSession(ctx, sess)
	}
	if err != nil {
		m.metricInc(MetricProfileRefreshFailure)
		m.emitAudit(ctx, auditEventProfileRefreshFailure, userIDOf(current), false, err, nil)
		return m.Snapshot(), err
	}

	m.metricInc(MetricProfileRefreshSuccess)
	m.emitAudit(ctx, auditEventProfileRefreshSuccess, sess.User.ID, true, nil, nil)
	return m.Snapshot(), nil
}

// ChangePassword rotates the signed-in account password. The session pair
// is untouched either way.
func (m *Manager) ChangePassword(ctx context.Context, input PasswordChange) error {
	if m == nil || !m.flows.Initialized() {
		return ErrManagerNotReady
	}

	current := m.beginWithSession()
	err := m.flows.ChangePassword(ctx, tokenOf(current), input.CurrentPassword, input.NewPassword)
	if err != nil {
		m.fail(err)
		m.metricInc(MetricPasswordChangeFailure)
		m.emitAudit(ctx, auditEventPasswordChangeFailure, userIDOf(current), false, err, nil)
		return err
	}

	m.settle()
	m.metricInc(MetricPasswordChangeSuccess)
	m.emitAudit(ctx, auditEventPasswordChangeSuccess, userIDOf(current), true, nil, nil)
	return nil
}

// ForgotPassword asks the service to mail a reset challenge. Works signed
// out.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	if m == nil || !m.flows.Initialized() {
		return ErrManagerNotReady
	}

	m.begin()
	err := m.flows.ForgotPassword(ctx, email)
	if err != nil {
		m.fail(err)
		m.metricInc(MetricPasswordResetRequestFailure)
		m.emitAudit(ctx, auditEventPasswordResetRequest, "", false, err, func() map[string]string {
			return map[string]string{"email": email}
		})
		return err
	}

	m.settle()
	m.metricInc(MetricPasswordResetRequest)
	m.emitAudit(ctx, auditEventPasswordResetRequest, "", true, nil, func() map[string]string {
		return map[string]string{"email": email}
	})
	return nil
}

// ResetPassword redeems a reset challenge for a new password. It does not
// sign the account in; the caller goes through [Login] afterwards.
func (m *Manager) ResetPassword(ctx context.Context, input PasswordReset) error {
	if m == nil || !m.flows.Initialized() {
		return ErrManagerNotReady
	}

	m.begin()
	err := m.flows.ResetPassword(ctx, input.Token, input.NewPassword)
	if err != nil {
		m.fail(err)
		m.metricInc(MetricPasswordResetConfirmFailure)
		m.emitAudit(ctx, auditEventPasswordResetConfirm, "", false, err, nil)
		return err
	}

	m.settle()
	m.metricInc(MetricPasswordResetConfirmSuccess)
	m.emitAudit(ctx, auditEventPasswordResetConfirm, "", true, nil, nil)
	return nil
}

// ClearError wipes the recorded operation error. No other effect.
func (m *Manager) ClearError() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.lastErr = ""
	m.mu.Unlock()
}

// Snapshot returns the current session state. Guard decisions and UI
// rendering read this; the returned value shares no memory with the
// manager's state.
func (m *Manager) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Loading: m.loading,
		Err:     m.lastErr,
	}
	if m.current != nil {
		clone := m.current.Clone()
		snap.User = clone.User
		snap.Token = clone.Token
		snap.Authenticated = true
		if clone.ExpiresAt > 0 {
			snap.ExpiresAt = time.Unix(clone.ExpiresAt, 0)
		}
	}
	return snap
}

// GuardPaths returns the configured login and home redirect targets for
// the routing layer.
func (m *Manager) GuardPaths() (loginPath, homePath string) {
	return m.config.Guard.LoginPath, m.config.Guard.HomePath
}

// Close shuts down the audit dispatcher, delivering buffered events.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.audit.Close()
}

// MetricsSnapshot returns a copy of all counters.
func (m *Manager) MetricsSnapshot() MetricsSnapshot {
	if m == nil || m.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return m.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded because the
// buffer was full.
func (m *Manager) AuditDropped() uint64 {
	if m == nil {
		return 0
	}
	return m.audit.Dropped()
}

// begin marks a mutating operation in flight and clears the previous
// error, per the "cleared on next attempt" contract.
func (m *Manager) begin() {
	m.mu.Lock()
	m.loading = true
	m.lastErr = ""
	m.mu.Unlock()
}

// beginWithSession is begin plus a stable copy of the current session for
// the flow to work against while the lock is released.
func (m *Manager) beginWithSession() *session.Session {
	m.mu.Lock()
	m.loading = true
	m.lastErr = ""
	current := m.current.Clone()
	m.mu.Unlock()
	return current
}

// commitSession makes a new session the truth in both stores: the durable
// write and the in-memory install happen under one mutex hold, so a racing
// operation commits either strictly before or strictly after and
// last-write-wins applies to storage and memory together. A failed write
// changes nothing in memory and records the error.
func (m *Manager) commitSession(ctx context.Context, sess *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, sess); err != nil {
		m.loading = false
		m.lastErr = err.Error()
		return err
	}

	m.current = sess
	m.loading = false
	m.lastErr = ""
	return nil
}

// commitMemory installs hydrated state (or signed-out for nil) without a
// storage write; hydrate reads storage, it never writes it.
func (m *Manager) commitMemory(sess *session.Session) {
	m.mu.Lock()
	m.current = sess
	m.loading = false
	m.lastErr = ""
	m.mu.Unlock()
}

// settle ends an operation that succeeded without changing the session.
func (m *Manager) settle() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// fail records the verbatim failure message and resets the in-flight flag,
// leaving the session untouched.
func (m *Manager) fail(err error) {
	m.mu.Lock()
	m.loading = false
	m.lastErr = err.Error()
	m.mu.Unlock()
}

func (m *Manager) metricInc(id MetricID) {
	if m == nil || m.metrics == nil {
		return
	}
	m.metrics.Inc(id)
}

func userIDOf(sess *session.Session) string {
	if sess == nil || sess.User == nil {
		return ""
	}
	return sess.User.ID
}

func tokenOf(sess *session.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Token
}
