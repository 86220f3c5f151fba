package session

// User is the identity record for the signed-in account as persisted by the
// store. Role is one of the closed set accepted by the guard package.
type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	Role  string
}

// Session pairs the identity record with its opaque credential. A Session
// value is either fully populated (User non-nil, Token non-empty) or absent
// entirely; the store never yields one half without the other.
type Session struct {
	User  *User
	Token string

	// ExpiresAt is the unix-seconds exp claim of JWT-shaped credentials,
	// zero for opaque tokens. Metadata only; nothing in this module gates
	// on it locally.
	ExpiresAt int64
}

// New builds a Session from a user record and its credential, filling in
// expiry metadata when the token carries a readable exp claim.
func New(user *User, token string) *Session {
	sess := &Session{User: user, Token: token}
	if exp, ok := TokenExpiry(token); ok {
		sess.ExpiresAt = exp
	}
	return sess
}

// Clone returns a deep copy so callers can hand snapshots out without
// exposing the stored record to mutation.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := &Session{Token: s.Token, ExpiresAt: s.ExpiresAt}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
