package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/kv"
)

// Store owns the persisted session record. No other component writes the
// underlying key.
type Store struct {
	kv  kv.Store
	key string
	now func() time.Time
}

func NewStore(backend kv.Store, key string) *Store {
	return &Store{
		kv:  backend,
		key: key,
		now: time.Now,
	}
}

// Save overwrites any prior record under the fixed key.
func (s *Store) Save(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}
	return s.kv.Set(ctx, s.key, string(data))
}

// Load returns the current record, or nil when there is none. A record
// that fails to decode, and a record whose expiry has passed, are both
// treated as absent: the key is deleted and nil is returned. Expiry is
// enforced only here, at read time.
func (s *Store) Load(ctx context.Context) (*Record, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// Corrupt entry: drop it rather than surface an error.
		_ = s.kv.Delete(ctx, s.key)
		return nil, nil
	}

	if rec.Expired(s.now()) {
		_ = s.kv.Delete(ctx, s.key)
		return nil, nil
	}

	return &rec, nil
}

// Clear deletes the record unconditionally. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
