package flows

import (
	"context"
)

// RunChangePassword rotates the password for the signed-in account. The
// session pair is untouched; the service keeps the current token valid.
func RunChangePassword(ctx context.Context, token, currentPassword, newPassword string, deps PasswordDeps) error {
	if token == "" {
		return ErrNoSession
	}
	return deps.Change(ctx, token, currentPassword, newPassword)
}

// RunForgotPassword asks the service to issue a reset challenge. Works
// signed out; no session state involved.
func RunForgotPassword(ctx context.Context, email string, deps PasswordDeps) error {
	return deps.Forgot(ctx, email)
}

// RunResetPassword redeems a reset challenge. Deliberately does not sign
// the account in; the caller goes through the normal login afterwards.
func RunResetPassword(ctx context.Context, resetToken, newPassword string, deps PasswordDeps) error {
	return deps.Reset(ctx, resetToken, newPassword)
}
