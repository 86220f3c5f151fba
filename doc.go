// Package stayauth is the client-side session and authorization-gate core
// of the hotel-booking front end: the process-wide holder of "who is signed
// in", its durable persistence, and the typed inputs for every auth
// service operation.
//
// The package is designed around one [Manager] per process, built through
// [Builder.Build], hydrated once from persisted storage, and read through
// [Manager.Snapshot] on every navigation. Manager methods are safe to call
// from multiple goroutines after initialization.
//
// # Architecture boundaries
//
// stayauth is the public surface. It exposes [Manager], [Builder],
// [Config], and value types (Snapshot, Credentials, etc.). Flow
// orchestration, metric storage, and audit dispatch live under internal/
// and are never exported. The remote identity API is consumed behind the
// [AuthService] interface; the stock HTTP implementation lives in the
// authclient package, and access decisions live in the guard package.
//
// # What this package must NOT do
//
//   - Verify credentials or tokens; that is the auth service's job.
//   - Perform navigation side effects; guard callers own redirects.
//   - Retry failed operations; every call resolves exactly once.
package stayauth
