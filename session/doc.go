// Package session owns the persisted form of the signed-in identity: the
// user record, its opaque credential, and the Redis-backed store that keeps
// both durable across process restarts.
//
// # Design
//
// The persisted layout is two independent keys, <prefix>:user (versioned
// binary user record) and <prefix>:token (raw credential string). The two
// keys are always written and cleared together with single atomic commands;
// a half-present pair is never produced by this package and is treated as
// corrupt when found.
//
// # Architecture boundaries
//
// This package owns durable storage and the record encoding. Session state
// transitions (login, logout, profile updates) live in the root package and
// internal/flows; access decisions live in the guard package.
//
// # What this package must NOT do
//
//   - Call the auth service or perform any HTTP I/O.
//   - Verify credentials; the token is opaque here apart from optional
//     expiry metadata read without verification.
//   - Cache state in memory; the root manager is the in-memory side.
package session
