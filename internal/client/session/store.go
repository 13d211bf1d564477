// Package session owns the console's authentication state: a two-state
// machine (anonymous / authenticated) backed by a single persisted token.
//
// The store is the only component that reads or writes the persisted token.
// Everything else observes state through IsAuthenticated, Token and
// Subscribe instead of re-deriving it from storage.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pushkard/userconsole/internal/client/repositories/tokens"
	"github.com/pushkard/userconsole/internal/logging"
)

// Store holds the session token and the inactivity timer tied to the
// authenticated state's lifetime.
//
// Invariant: IsAuthenticated reports true iff a non-empty token is held.
// Every exit from the authenticated state erases the persisted token, no
// matter what triggered it or whether a server call succeeded.
type Store struct {
	repo        tokens.Repository
	log         logging.Logger
	idleTimeout time.Duration

	mu        sync.Mutex
	token     string
	idleTimer *time.Timer
	subs      []func(authenticated bool)
}

// NewStore builds a store over the given token repository. idleTimeout is
// the inactivity window after which the session is torn down; zero disables
// the timer.
func NewStore(repo tokens.Repository, idleTimeout time.Duration, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, idleTimeout: idleTimeout}
}

// Restore loads the persisted token, if any. The console starts
// authenticated iff a token survived the previous run.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.armIdleTimerLocked()
	s.mu.Unlock()

	s.notify(true)
	return nil
}

// Token returns the current bearer token, empty when anonymous.
// It satisfies the API client's TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Subscribe registers a callback invoked with the new authenticated flag on
// every state transition. Callbacks run outside the store's lock.
func (s *Store) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Activate persists the token issued by a successful login and enters the
// authenticated state. On a persistence error the state is left anonymous.
func (s *Store) Activate(ctx context.Context, token string) error {
	if err := s.repo.Save(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.armIdleTimerLocked()
	s.mu.Unlock()

	s.notify(true)
	return nil
}

// Clear leaves the authenticated state and erases the persisted token.
// Clearing an already-anonymous store is a no-op, so concurrent teardown
// paths (explicit logout, idle expiry, failure handlers) stay idempotent.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		// In-memory state is already anonymous; the stale row only means
		// the next startup may restore a dead token.
		s.log.Warn(ctx, "failed to erase persisted token", "error", err)
	}

	s.notify(false)
}

// Touch resets the inactivity timer. Call it on any observed input activity.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.idleTimer == nil {
		return
	}
	s.idleTimer.Reset(s.idleTimeout)
}

// armIdleTimerLocked (re)starts the single idle timer owned by the store.
// Callers hold s.mu.
func (s *Store) armIdleTimerLocked() {
	if s.idleTimeout <= 0 {
		return
	}
	if s.idleTimer != nil {
		s.idleTimer.Reset(s.idleTimeout)
		return
	}
	s.idleTimer = time.AfterFunc(s.idleTimeout, s.expire)
}

func (s *Store) expire() {
	ctx := context.Background()
	s.log.Info(ctx, "session expired after inactivity", "timeout", s.idleTimeout)
	s.Clear(ctx)
}

func (s *Store) notify(authenticated bool) {
	s.mu.Lock()
	subs := make([]func(bool), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(authenticated)
	}
}
