package session

import (
	"context"
	"time"
)

// Manager orchestrates the session lifecycle over the Store and the
// Validator.
type Manager struct {
	validator *Validator
	store     *Store
	duration  time.Duration
	now       func() time.Time
}

func NewManager(validator *Validator, store *Store, duration time.Duration) *Manager {
	return &Manager{
		validator: validator,
		store:     store,
		duration:  duration,
		now:       time.Now,
	}
}

// Login validates the credentials and, on success, persists a fresh
// session. Invalid credentials return (false, nil) and leave the store
// untouched; no partial state is ever written.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, error) {
	if !m.validator.Validate(username, password) {
		return false, nil
	}

	now := m.now()
	rec := Record{
		IsAuthenticated: true,
		LoginTime:       now.UnixMilli(),
		ExpiresAt:       now.Add(m.duration).UnixMilli(),
	}

	if err := m.store.Save(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}

// IsAuthenticated reports whether a live session exists.
func (m *Manager) IsAuthenticated(ctx context.Context) (bool, error) {
	rec, err := m.store.Load(ctx)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	return rec.IsAuthenticated, nil
}

// GetSession returns the live session record, or nil when there is none.
func (m *Manager) GetSession(ctx context.Context) (*Record, error) {
	return m.store.Load(ctx)
}

// Logout removes the session. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// ExtendSession pushes the expiry of a live session out to a full
// duration from now, preserving the original login time. Without a live
// session it is a no-op.
func (m *Manager) ExtendSession(ctx context.Context) error {
	rec, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	rec.ExpiresAt = m.now().Add(m.duration).UnixMilli()
	return m.store.Save(ctx, *rec)
}
