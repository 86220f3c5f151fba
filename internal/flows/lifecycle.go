package flows

import (
	"context"

	"github.com/NhuHaoo/HOTELS-BOOKING-sub002/session"
)

// RunHydrate loads the persisted pair at process start. An empty store
// yields (nil, nil); a corrupt pair surfaces the storage error after the
// store has already cleared itself.
func RunHydrate(ctx context.Context, deps LifecycleDeps) (*session.Session, error) {
	return deps.Store.Load(ctx)
}

// RunLogout erases both persisted keys. No network call: the service's
// tokens are not revocable through this boundary, and clearing an empty
// store is a no-op, which makes logout idempotent.
func RunLogout(ctx context.Context, deps LifecycleDeps) error {
	return deps.Store.Clear(ctx)
}
