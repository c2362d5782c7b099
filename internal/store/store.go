// Package store is the client-side synchronization core: it owns the
// in-memory wedding aggregate for one authenticated session, applies
// optimistic mutations to it, persists each mutation through the remote
// service, and reconciles server-assigned identities back into local state.
package store

import (
	"sync"

	"github.com/rs/zerolog"

	"enlace/internal/remote"
	"enlace/internal/wedding"
)

// Store holds the aggregate for one user session. Mutations patch the
// snapshot first (optimistically) and then persist; the remote store stays
// the source of durable truth, reasserted by Refresh. Snapshot access is
// serialized internally; remote calls race freely and the last write wins.
type Store struct {
	svc    remote.Service
	log    zerolog.Logger
	userID uint64

	mu        sync.RWMutex
	weddingID string
	data      wedding.Data
	loading   bool
}

func New(svc remote.Service, log zerolog.Logger, userID uint64) *Store {
	return &Store{
		svc:    svc,
		log:    log.With().Uint64("user_id", userID).Logger(),
		userID: userID,
		data:   wedding.DefaultData(),
	}
}

// Snapshot returns a copy of the current aggregate. The copy shares no
// state with the store, so it is always safe to render or mutate.
func (s *Store) Snapshot() wedding.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Loading reports whether a Refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// replace swaps the whole aggregate in one write, the only way loaded state
// becomes visible.
func (s *Store) replace(data wedding.Data, weddingID string) {
	s.mu.Lock()
	s.data = data
	s.weddingID = weddingID
	s.mu.Unlock()
}

// patch applies one optimistic mutation under the lock and returns the
// wedding id so the caller can decide whether a remote call is possible.
func (s *Store) patch(fn func(*wedding.Data)) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
	return s.weddingID
}

func (s *Store) currentWeddingID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weddingID
}

func anyTempID(ids []string) bool {
	for _, id := range ids {
		if wedding.IsTempID(id) {
			return true
		}
	}
	return false
}
