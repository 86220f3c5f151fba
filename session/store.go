package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrStorageUnavailable is returned when the backing key-value store cannot
// be reached.
var ErrStorageUnavailable = errors.New("session storage unavailable")

// ErrRecordCorrupt is returned when the persisted pair is half-present or
// the user record blob does not decode. The store clears both keys before
// returning it so the next load starts clean.
var ErrRecordCorrupt = errors.New("persisted session corrupt")

const (
	userKeySuffix  = ":user"
	tokenKeySuffix = ":token"
)

// Store persists the session pair in Redis under two keys that are always
// written and cleared together.
type Store struct {
	redis  redis.UniversalClient
	prefix string
}

// NewStore creates a session [Store] backed by the given Redis client.
// prefix sets the key namespace, e.g. "stayauth" yields "stayauth:user" and
// "stayauth:token".
func NewStore(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		redis:  client,
		prefix: prefix,
	}
}

func (s *Store) userKey() string {
	return s.prefix + userKeySuffix
}

func (s *Store) tokenKey() string {
	return s.prefix + tokenKeySuffix
}

// Save writes the user record and token in one atomic MSET. Readers either
// see the previous pair or the new pair, never a mix.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	if sess == nil || sess.User == nil || sess.Token == "" {
		return errors.New("refusing to persist incomplete session")
	}

	blob, err := EncodeUser(sess.User)
	if err != nil {
		return err
	}

	if err := s.redis.MSet(ctx, s.userKey(), blob, s.tokenKey(), sess.Token).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return nil
}

// Load reads the persisted pair. An absent pair returns (nil, nil). A
// half-present or undecodable pair is cleared and reported as
// [ErrRecordCorrupt].
func (s *Store) Load(ctx context.Context) (*Session, error) {
	values, err := s.redis.MGet(ctx, s.userKey(), s.tokenKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	userRaw, userOK := values[0].(string)
	tokenRaw, tokenOK := values[1].(string)

	if !userOK && !tokenOK {
		return nil, nil
	}
	if !userOK || !tokenOK || tokenRaw == "" {
		_ = s.Clear(ctx)
		return nil, ErrRecordCorrupt
	}

	user, err := DecodeUser([]byte(userRaw))
	if err != nil {
		_ = s.Clear(ctx)
		return nil, ErrRecordCorrupt
	}

	return New(user, tokenRaw), nil
}

// Clear removes both keys in one atomic DEL. Clearing an already-empty
// store is a no-op, which keeps logout idempotent.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.userKey(), s.tokenKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
