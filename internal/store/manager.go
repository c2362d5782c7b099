package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"enlace/internal/remote"
)

// Manager hands out one Store per authenticated session. The first use for
// a user constructs the store and runs the loader once; logout tears the
// store down. There is no process-wide aggregate.
type Manager struct {
	svc remote.Service
	log zerolog.Logger

	mu       sync.Mutex
	sessions map[uint64]*Store
}

func NewManager(svc remote.Service, log zerolog.Logger) *Manager {
	return &Manager{
		svc:      svc,
		log:      log,
		sessions: make(map[uint64]*Store),
	}
}

// ForUser returns the session store for userID, creating and loading it on
// first use.
func (m *Manager) ForUser(ctx context.Context, userID uint64) *Store {
	m.mu.Lock()
	st, ok := m.sessions[userID]
	if !ok {
		st = New(m.svc, m.log, userID)
		m.sessions[userID] = st
	}
	m.mu.Unlock()

	if !ok {
		st.Refresh(ctx)
	}
	return st
}

// Drop discards the session store for userID; the next ForUser starts a
// fresh session and reloads.
func (m *Manager) Drop(userID uint64) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
