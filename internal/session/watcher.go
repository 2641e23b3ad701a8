package session

import (
	"context"
	"sync"
	"time"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
)

// Watcher keeps an in-memory authentication flag reconciled with the
// persisted session. The store has no change notification, so the flag
// can only track lazy expiry by re-reading on a fixed period.
type Watcher struct {
	manager  *Manager
	interval time.Duration

	mu     sync.Mutex
	authed bool
	stop   chan struct{}
	done   chan struct{}
}

func NewWatcher(manager *Manager, interval time.Duration) *Watcher {
	return &Watcher{
		manager:  manager,
		interval: interval,
	}
}

// Start launches the polling loop. Starting a running watcher is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stop != nil {
		return
	}

	w.stop = make(chan struct{})
	w.done = make(chan struct{})

	w.refresh()

	go w.run(w.stop, w.done)
}

// Stop cancels the polling loop and waits for it to exit. Stopping a
// stopped watcher is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stop == nil {
		w.mu.Unlock()
		return
	}
	stop, done := w.stop, w.done
	w.stop = nil
	w.done = nil
	w.mu.Unlock()

	close(stop)
	<-done
}

// Authenticated returns the flag as of the last poll.
func (w *Watcher) Authenticated() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.authed
}

func (w *Watcher) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.mu.Lock()
			w.refresh()
			w.mu.Unlock()
		}
	}
}

// refresh re-reads the persisted session. Callers must hold w.mu.
func (w *Watcher) refresh() {
	ok, err := w.manager.IsAuthenticated(context.Background())
	if err != nil {
		logger.Warn("session poll failed", map[string]any{
			"error": err.Error(),
		})
		w.authed = false
		return
	}
	w.authed = ok
}
