// Package session holds the dashboard's authentication state: the backend
// bearer token and the account role, keyed by a browser session id. Only
// these two values are ever persisted; entity data is always re-fetched.
package session

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a session id has no stored state (never
// logged in, logged out, or expired).
var ErrNotFound = errors.New("session not found")

// Session is the persisted auth state.
type Session struct {
	Token    string `json:"token"`
	UserType string `json:"userType"`
}

// Store persists sessions. Implementations: RedisStore for the running
// service, MemoryStore for tests.
type Store interface {
	Save(ctx context.Context, id string, s Session) error
	Load(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in a map. Construct a fresh one per test
// instead of sharing state across tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Save(_ context.Context, id string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
