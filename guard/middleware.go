package guard

import (
	"net/http"

	stayauth "github.com/NhuHaoo/HOTELS-BOOKING-sub002"
)

// SnapshotSource yields the current session snapshot. *stayauth.Manager
// satisfies it; tests substitute fixed snapshots.
type SnapshotSource interface {
	Snapshot() stayauth.Snapshot
}

// Protect wraps a handler with the access decision for one screen. The
// snapshot is taken per request, so a login or logout between navigations
// is always picked up. Redirect outcomes become 302s to the given paths;
// the decision itself stays in [Decide].
func Protect(source SnapshotSource, policy Policy, loginPath, homePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if source == nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			switch Decide(source.Snapshot(), policy) {
			case RedirectLogin:
				http.Redirect(w, r, loginPath, http.StatusFound)
			case RedirectHome:
				http.Redirect(w, r, homePath, http.StatusFound)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
