package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	entries map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]string{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.entries[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.entries[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeStore) AccessSessionKey(accessID string) string {
	return "sp:session:access:" + accessID
}

func newTestManager(store *fakeStore) *Manager {
	return &Manager{store: store, keyer: store, ttl: time.Hour}
}

func TestGenerateAndHasSession(t *testing.T) {
	store := newFakeStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	token, err := mgr.Generate(ctx, accessID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected a refresh token")
	}

	ok, err := mgr.HasSession(ctx, accessID)
	if err != nil || !ok {
		t.Fatalf("expected live session, got ok=%v err=%v", ok, err)
	}

	ok, err = mgr.HasSession(ctx, NewAccessID())
	if err != nil || ok {
		t.Fatalf("expected no session for unknown id, got ok=%v err=%v", ok, err)
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	store := newFakeStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	token, err := mgr.Generate(ctx, accessID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newID, newToken, err := mgr.Rotate(ctx, accessID, token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newID == accessID || newToken == token {
		t.Fatal("rotation must issue a fresh pair")
	}

	if ok, _ := mgr.HasSession(ctx, accessID); ok {
		t.Fatal("old session should be revoked after rotation")
	}
	if ok, _ := mgr.HasSession(ctx, newID); !ok {
		t.Fatal("new session should be live after rotation")
	}

	if _, _, err := mgr.Rotate(ctx, accessID, token); err != ErrInvalidRefreshToken {
		t.Fatalf("reusing a rotated token should fail, got %v", err)
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	store := newFakeStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := mgr.Rotate(ctx, accessID, "forged"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	store := newFakeStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ok, _ := mgr.HasSession(ctx, accessID); ok {
		t.Fatal("session should be gone after revoke")
	}
}
