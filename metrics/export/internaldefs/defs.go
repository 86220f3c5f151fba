package internaldefs

import (
	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
)

// CounterDef maps one counter slot to its exported series name.
type CounterDef struct {
	ID   stayauth.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in render order.
var CounterDefs = []CounterDef{
	{ID: stayauth.MetricLoginSuccess, Name: "stayauth_login_success_total", Help: "Successful login operations."},
	{ID: stayauth.MetricLoginFailure, Name: "stayauth_login_failure_total", Help: "Failed login operations."},
	{ID: stayauth.MetricRegisterSuccess, Name: "stayauth_register_success_total", Help: "Successful registrations."},
	{ID: stayauth.MetricRegisterFailure, Name: "stayauth_register_failure_total", Help: "Failed registrations."},
	{ID: stayauth.MetricProfileUpdateSuccess, Name: "stayauth_profile_update_success_total", Help: "Successful profile updates."},
	{ID: stayauth.MetricProfileUpdateFailure, Name: "stayauth_profile_update_failure_total", Help: "Failed profile updates."},
	{ID: stayauth.MetricProfileRefreshSuccess, Name: "stayauth_profile_refresh_success_total", Help: "Successful profile refreshes."},
	{ID: stayauth.MetricProfileRefreshFailure, Name: "stayauth_profile_refresh_failure_total", Help: "Failed profile refreshes."},
	{ID: stayauth.MetricPasswordChangeSuccess, Name: "stayauth_password_change_success_total", Help: "Successful password changes."},
	{ID: stayauth.MetricPasswordChangeFailure, Name: "stayauth_password_change_failure_total", Help: "Failed password changes."},
	{ID: stayauth.MetricPasswordResetRequest, Name: "stayauth_password_reset_request_total", Help: "Delivered password reset requests."},
	{ID: stayauth.MetricPasswordResetRequestFailure, Name: "stayauth_password_reset_request_failure_total", Help: "Failed password reset requests."},
	{ID: stayauth.MetricPasswordResetConfirmSuccess, Name: "stayauth_password_reset_confirm_success_total", Help: "Redeemed password reset challenges."},
	{ID: stayauth.MetricPasswordResetConfirmFailure, Name: "stayauth_password_reset_confirm_failure_total", Help: "Rejected password reset challenges."},
	{ID: stayauth.MetricLogout, Name: "stayauth_logout_total", Help: "Logout operations that cleared a session."},
	{ID: stayauth.MetricHydrateSuccess, Name: "stayauth_hydrate_success_total", Help: "Hydrations that restored a persisted session."},
	{ID: stayauth.MetricHydrateEmpty, Name: "stayauth_hydrate_empty_total", Help: "Hydrations that found no persisted session."},
	{ID: stayauth.MetricHydrateCorrupt, Name: "stayauth_hydrate_corrupt_total", Help: "Hydrations that discarded a corrupt persisted pair."},
}
