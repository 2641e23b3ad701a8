package session

import (
	"context"
	"testing"
	"time"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/kv"
)

const testKey = "farmsmart_admin_session"

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	backend := kv.NewMemoryStore()
	return NewStore(backend, testKey), backend
}

func TestStoreSaveLoad(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	rec := Record{
		IsAuthenticated: true,
		LoginTime:       now.UnixMilli(),
		ExpiresAt:       now.Add(24 * time.Hour).UnixMilli(),
	}

	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned absent, want record")
	}
	if *got != rec {
		t.Fatalf("Load = %+v, want %+v", *got, rec)
	}
}

func TestStoreLoadAbsent(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("Load = %+v, want absent", got)
	}
}

func TestStoreLoadMalformedSelfHeals(t *testing.T) {
	t.Parallel()

	store, backend := newTestStore(t)
	ctx := context.Background()

	if err := backend.Set(ctx, testKey, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("Load = %+v, want absent for malformed record", got)
	}

	// The bad entry must be gone from the backing store.
	if _, ok, _ := backend.Get(ctx, testKey); ok {
		t.Fatal("malformed record was not deleted")
	}
}

func TestStoreLazyExpiry(t *testing.T) {
	t.Parallel()

	store, backend := newTestStore(t)
	ctx := context.Background()

	base := time.Now()
	store.now = func() time.Time { return base }

	rec := Record{
		IsAuthenticated: true,
		LoginTime:       base.UnixMilli(),
		ExpiresAt:       base.Add(24 * time.Hour).UnixMilli(),
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Still live one millisecond before expiry.
	store.now = func() time.Time { return base.Add(24*time.Hour - time.Millisecond) }
	if got, _ := store.Load(ctx); got == nil {
		t.Fatal("session expired early")
	}

	// Past expiry: absent, and the key is removed.
	store.now = func() time.Time { return base.Add(24*time.Hour + time.Millisecond) }
	if got, _ := store.Load(ctx); got != nil {
		t.Fatalf("Load = %+v, want absent after expiry", got)
	}
	if _, ok, _ := backend.Get(ctx, testKey); ok {
		t.Fatal("expired record was not deleted")
	}

	// Idempotent: a second read after expiry is still absent, no error.
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load after expiry: %v", err)
	}
	if got != nil {
		t.Fatalf("second Load = %+v, want absent", got)
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}

	rec := Record{IsAuthenticated: true, ExpiresAt: time.Now().Add(time.Hour).UnixMilli()}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}

	if got, _ := store.Load(ctx); got != nil {
		t.Fatalf("Load after Clear = %+v, want absent", got)
	}
}
