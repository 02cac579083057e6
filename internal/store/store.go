// Package store keeps an in-memory cache of one therapist's clients,
// sessions and notes in front of the remote backend. Every mutation goes
// to the backend first; the cache only changes after the write succeeds.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/practiq/practiq_backend/internal/domain"
)

// Backend is the remote collaborator the store writes through to.
type Backend interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)

	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)
	UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error)

	CreateSessions(ctx context.Context, base domain.Session, rec domain.Recurrence) ([]domain.Session, error)
	UpdateSession(ctx context.Context, s domain.Session) (domain.Session, error)
	CompleteSession(ctx context.Context, id uuid.UUID) (domain.Session, error)
	CancelSession(ctx context.Context, id uuid.UUID) (domain.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	CreateNote(ctx context.Context, n domain.Note) (domain.Note, error)
}

// Store is safe for concurrent use. Last write wins; there is no
// optimistic caching and no retry.
type Store struct {
	backend Backend

	mu       sync.RWMutex
	ready    bool
	clients  []domain.Client
	sessions []domain.Session
	notes    []domain.Note
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load fetches all three collections concurrently. The store is marked
// ready only when every fetch succeeds; any failure resets it to an
// empty, not-ready state.
func (s *Store) Load(ctx context.Context) error {
	var (
		clients  []domain.Client
		sessions []domain.Session
		notes    []domain.Note
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.backend.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.backend.ListSessions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = s.backend.ListNotes(gctx)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := g.Wait(); err != nil {
		s.ready = false
		s.clients = nil
		s.sessions = nil
		s.notes = nil
		return err
	}

	s.ready = true
	s.clients = clients
	s.sessions = sessions
	s.notes = notes
	return nil
}

// Ready reports whether the last Load fully succeeded.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Clients returns a copy of the cached client list.
func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Sessions returns a copy of the cached session list.
func (s *Store) Sessions() []domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Notes returns a copy of the cached note list.
func (s *Store) Notes() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Client looks up one cached client by id.
func (s *Store) Client(id uuid.UUID) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// Session looks up one cached session by id.
func (s *Store) Session(id uuid.UUID) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return domain.Session{}, false
}

// AddClient writes through to the backend and inserts the canonical row
// at the head of the cache.
func (s *Store) AddClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	created, err := s.backend.CreateClient(ctx, c)
	if err != nil {
		return domain.Client{}, err
	}

	s.mu.Lock()
	s.clients = append([]domain.Client{created}, s.clients...)
	s.mu.Unlock()
	return created, nil
}

// UpdateClient writes through and replaces the cached row in place.
func (s *Store) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	updated, err := s.backend.UpdateClient(ctx, c)
	if err != nil {
		return domain.Client{}, err
	}

	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == updated.ID {
			s.clients[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// AddSessions writes through a base session plus its recurrence rule
// (the backend expands it into one row per occurrence) and inserts the
// canonical rows at the head.
func (s *Store) AddSessions(ctx context.Context, base domain.Session, rec domain.Recurrence) ([]domain.Session, error) {
	created, err := s.backend.CreateSessions(ctx, base, rec)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions = append(append([]domain.Session{}, created...), s.sessions...)
	s.mu.Unlock()
	return created, nil
}

// UpdateSession writes through and replaces the cached row in place.
func (s *Store) UpdateSession(ctx context.Context, sess domain.Session) (domain.Session, error) {
	updated, err := s.backend.UpdateSession(ctx, sess)
	if err != nil {
		return domain.Session{}, err
	}
	s.replaceSession(updated)
	return updated, nil
}

// CompleteSession writes through and replaces the cached row with the
// completed one.
func (s *Store) CompleteSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	updated, err := s.backend.CompleteSession(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	s.replaceSession(updated)
	return updated, nil
}

// CancelSession writes through and replaces the cached row with the
// cancelled one.
func (s *Store) CancelSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	updated, err := s.backend.CancelSession(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	s.replaceSession(updated)
	return updated, nil
}

func (s *Store) replaceSession(updated domain.Session) {
	s.mu.Lock()
	for i := range s.sessions {
		if s.sessions[i].ID == updated.ID {
			s.sessions[i] = updated
			break
		}
	}
	s.mu.Unlock()
}

// DeleteSession writes through and removes the cached row.
func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := s.backend.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// AddNote writes through and, mirroring the service-side transaction,
// flips the cached session to completed alongside inserting the note.
func (s *Store) AddNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	created, err := s.backend.CreateNote(ctx, n)
	if err != nil {
		return domain.Note{}, err
	}

	s.mu.Lock()
	s.notes = append([]domain.Note{created}, s.notes...)
	for i := range s.sessions {
		if s.sessions[i].ID == created.SessionID {
			s.sessions[i].Status = domain.SessionCompleted
			break
		}
	}
	s.mu.Unlock()
	return created, nil
}
