package session

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(rdb, "stayauth")

	return store, mr, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func testUser() *User {
	return &User{
		ID:    "u-1",
		Name:  "Ha Nguyen",
		Email: "ha@example.com",
		Phone: "0901234567",
		Role:  "user",
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _, cleanup := newTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Save(ctx, New(testUser(), "tok-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected persisted session, got nil")
	}
	if loaded.Token != "tok-1" {
		t.Fatalf("token = %q, want tok-1", loaded.Token)
	}
	if loaded.User == nil || *loaded.User != *testUser() {
		t.Fatalf("user record mismatch: %+v", loaded.User)
	}
}

func TestStoreWritesBothKeysTogether(t *testing.T) {
	store, mr, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.Save(context.Background(), New(testUser(), "tok-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !mr.Exists("stayauth:user") || !mr.Exists("stayauth:token") {
		t.Fatal("expected both session keys after save")
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store, _, cleanup := newTestStore(t)
	defer cleanup()

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil session on empty storage, got %+v", loaded)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	store, mr, cleanup := newTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if err := store.Save(ctx, New(testUser(), "tok-1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("first clear failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}

	if mr.Exists("stayauth:user") || mr.Exists("stayauth:token") {
		t.Fatal("expected both session keys removed")
	}
	loaded, err := store.Load(ctx)
	if err != nil || loaded != nil {
		t.Fatalf("expected empty storage after clear, got %+v, %v", loaded, err)
	}
}

func TestStoreHalfPresentPairIsCorrupt(t *testing.T) {
	store, mr, cleanup := newTestStore(t)
	defer cleanup()

	ctx := context.Background()

	mr.Set("stayauth:token", "tok-orphan")

	if _, err := store.Load(ctx); !errors.Is(err, ErrRecordCorrupt) {
		t.Fatalf("err = %v, want ErrRecordCorrupt", err)
	}
	if mr.Exists("stayauth:token") {
		t.Fatal("expected orphan token cleared during recovery")
	}
}

func TestStoreUndecodableUserIsCorrupt(t *testing.T) {
	store, mr, cleanup := newTestStore(t)
	defer cleanup()

	mr.Set("stayauth:user", "\xffgarbage")
	mr.Set("stayauth:token", "tok-1")

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrRecordCorrupt) {
		t.Fatalf("err = %v, want ErrRecordCorrupt", err)
	}
}

func TestStoreRejectsIncompleteSession(t *testing.T) {
	store, _, cleanup := newTestStore(t)
	defer cleanup()

	if err := store.Save(context.Background(), &Session{User: testUser()}); err == nil {
		t.Fatal("expected error persisting session without token")
	}
	if err := store.Save(context.Background(), &Session{Token: "tok-1"}); err == nil {
		t.Fatal("expected error persisting session without user")
	}
}
