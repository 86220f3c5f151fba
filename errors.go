package stayauth

import (
	"errors"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/internal/flows"
	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

var (
	// ErrManagerNotReady is returned when a Manager is used before
	// [Builder.Build] wired it.
	ErrManagerNotReady = errors.New("session manager not initialized")
	// ErrNotAuthenticated is returned by session-bound operations invoked
	// while signed out.
	ErrNotAuthenticated = flows.ErrNoSession
	// ErrStorageUnavailable is returned when the persisted store cannot be
	// reached.
	ErrStorageUnavailable = session.ErrStorageUnavailable
	// ErrSessionCorrupt is returned when the persisted pair was
	// half-present or undecodable and has been discarded.
	ErrSessionCorrupt = session.ErrRecordCorrupt
	// ErrServiceContract is returned when the auth service answers a login
	// or register with an incomplete payload (user without token or the
	// reverse). The invariant that both are present together is enforced
	// at this boundary so no later state can violate it.
	ErrServiceContract = errors.New("auth service returned incomplete session payload")
)
