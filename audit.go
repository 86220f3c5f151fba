package stayauth

import (
	"context"
	"time"

	internalaudit "github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/audit"
	"github.com/google/uuid"
)

const (
	auditEventLoginSuccess          = "login_success"
	auditEventLoginFailure          = "login_failure"
	auditEventRegisterSuccess       = "register_success"
	auditEventRegisterFailure       = "register_failure"
	auditEventLogout                = "logout"
	auditEventProfileUpdateSuccess  = "profile_update_success"
	auditEventProfileUpdateFailure  = "profile_update_failure"
	auditEventProfileRefreshSuccess = "profile_refresh_success"
	auditEventProfileRefreshFailure = "profile_refresh_failure"
	auditEventPasswordChangeSuccess = "password_change_success"
	auditEventPasswordChangeFailure = "password_change_failure"
	auditEventPasswordResetRequest  = "password_reset_request"
	auditEventPasswordResetConfirm  = "password_reset_confirm"
	auditEventHydrate               = "session_hydrate"
)

// emitAudit builds and dispatches one audit event. The metadata closure is
// only invoked when auditing is active, so call sites pay nothing when it
// is disabled.
func (m *Manager) emitAudit(
	ctx context.Context,
	eventType string,
	userID string,
	success bool,
	err error,
	metadata func() map[string]string,
) {
	if m == nil || m.audit == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		RequestID: uuid.NewString(),
		Success:   success,
	}
	if err != nil {
		event.Error = err.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	m.audit.Emit(ctx, event)
}
