package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/service/client"
	"github.com/practiq/practiq_backend/internal/service/note"
	"github.com/practiq/practiq_backend/internal/service/session"
)

// Manager hands out one Store per therapist, backed by the persistence
// services. A store is loaded on first use and reloaded after a failed
// load, so a backend outage never leaves stale partial data behind.
type Manager struct {
	clients  client.Service
	sessions session.Service
	notes    note.Service

	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

func NewManager(clients client.Service, sessions session.Service, notes note.Service) *Manager {
	return &Manager{
		clients:  clients,
		sessions: sessions,
		notes:    notes,
		stores:   make(map[uuid.UUID]*Store),
	}
}

// For returns the therapist's store, loading it when it is not ready.
func (m *Manager) For(ctx context.Context, therapistID uuid.UUID) (*Store, error) {
	m.mu.Lock()
	st, ok := m.stores[therapistID]
	if !ok {
		st = New(&serviceBackend{
			therapistID: therapistID,
			clients:     m.clients,
			sessions:    m.sessions,
			notes:       m.notes,
		})
		m.stores[therapistID] = st
	}
	m.mu.Unlock()

	if !st.Ready() {
		if err := st.Load(ctx); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Drop forgets a therapist's store. The next For call reloads from the
// services.
func (m *Manager) Drop(therapistID uuid.UUID) {
	m.mu.Lock()
	delete(m.stores, therapistID)
	m.mu.Unlock()
}
