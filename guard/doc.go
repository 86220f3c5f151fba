// Package guard makes the per-screen access decision for the booking front
// end: given the current session snapshot and the screen's declared policy,
// it yields exactly one of allow, redirect-to-login, or redirect-to-home.
//
// [Decide] is a pure function with no state of its own; it must be
// re-evaluated on every navigation so a decision never outlives a session
// change. The navigation side effect belongs to the caller; [Protect] is
// the stock net/http adapter that turns redirect outcomes into 302s.
//
// Evaluation order is part of the contract: authentication is checked
// strictly before role, so an unauthenticated visitor asking for an
// admin-only screen is sent to login, never to home.
package guard
