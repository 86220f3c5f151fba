// Package flows holds the orchestration for each session-store operation as
// small Run functions over explicit Deps structs. The root manager wires
// Deps once at build time and delegates; the functions themselves never see
// the manager, which keeps every flow testable with plain closures.
//
// Flows that mutate the session (login, register, profile update) return
// the successor session and leave persistence to the caller: the manager
// writes the pair and installs it in memory inside one critical section, so
// the durable and in-memory copies can never be observed disagreeing, even
// across racing operations.
package flows
