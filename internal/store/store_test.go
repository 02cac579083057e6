package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend assigns ids on create and can be told to fail per call.
type fakeBackend struct {
	clients  []domain.Client
	sessions []domain.Session
	notes    []domain.Note

	failListSessions bool
	failWrites       bool
}

func (f *fakeBackend) ListClients(ctx context.Context) ([]domain.Client, error) {
	return append([]domain.Client{}, f.clients...), nil
}

func (f *fakeBackend) ListSessions(ctx context.Context) ([]domain.Session, error) {
	if f.failListSessions {
		return nil, errBackend
	}
	return append([]domain.Session{}, f.sessions...), nil
}

func (f *fakeBackend) ListNotes(ctx context.Context) ([]domain.Note, error) {
	return append([]domain.Note{}, f.notes...), nil
}

func (f *fakeBackend) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	if f.failWrites {
		return domain.Client{}, errBackend
	}
	c.ID = uuid.New()
	return c, nil
}

func (f *fakeBackend) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	if f.failWrites {
		return domain.Client{}, errBackend
	}
	return c, nil
}

func (f *fakeBackend) CreateSessions(ctx context.Context, base domain.Session, rec domain.Recurrence) ([]domain.Session, error) {
	if f.failWrites {
		return nil, errBackend
	}
	// one row for the base date, one more per weekly repeat marker
	count := 1
	if rec.Frequency == domain.RecurWeekly && rec.EndDate != "" {
		count = 2
	}
	out := make([]domain.Session, count)
	for i := range out {
		s := base
		s.ID = uuid.New()
		out[i] = s
	}
	return out, nil
}

func (f *fakeBackend) UpdateSession(ctx context.Context, s domain.Session) (domain.Session, error) {
	if f.failWrites {
		return domain.Session{}, errBackend
	}
	return s, nil
}

func (f *fakeBackend) CompleteSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if f.failWrites {
		return domain.Session{}, errBackend
	}
	return domain.Session{ID: id, Status: domain.SessionCompleted}, nil
}

func (f *fakeBackend) CancelSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if f.failWrites {
		return domain.Session{}, errBackend
	}
	return domain.Session{ID: id, Status: domain.SessionCancelled}, nil
}

func (f *fakeBackend) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if f.failWrites {
		return errBackend
	}
	return nil
}

func (f *fakeBackend) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	if f.failWrites {
		return domain.Note{}, errBackend
	}
	n.ID = uuid.New()
	return n, nil
}

func TestLoad(t *testing.T) {
	backend := &fakeBackend{
		clients:  []domain.Client{{ID: uuid.New(), FirstName: "Ana", LastName: "Silva"}},
		sessions: []domain.Session{{ID: uuid.New(), Date: "2024-01-01", Time: "10:00"}},
		notes:    []domain.Note{{ID: uuid.New(), Content: "intake"}},
	}

	s := New(backend)
	if s.Ready() {
		t.Fatal("store ready before Load()")
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.Ready() {
		t.Fatal("store not ready after successful Load()")
	}
	if len(s.Clients()) != 1 || len(s.Sessions()) != 1 || len(s.Notes()) != 1 {
		t.Errorf("cache sizes = %d/%d/%d, want 1/1/1",
			len(s.Clients()), len(s.Sessions()), len(s.Notes()))
	}
}

func TestLoadPartialFailureResetsEverything(t *testing.T) {
	backend := &fakeBackend{
		clients:          []domain.Client{{ID: uuid.New()}},
		failListSessions: true,
	}

	s := New(backend)
	if err := s.Load(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("Load() error = %v, want %v", err, errBackend)
	}

	if s.Ready() {
		t.Error("store marked ready after failed Load()")
	}
	if len(s.Clients()) != 0 || len(s.Sessions()) != 0 || len(s.Notes()) != 0 {
		t.Error("failed Load() left data in the cache")
	}

	// recovery: a later successful Load repopulates
	backend.failListSessions = false
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if !s.Ready() || len(s.Clients()) != 1 {
		t.Error("store did not recover after successful reload")
	}
}

func TestAddClientInsertsAtHead(t *testing.T) {
	backend := &fakeBackend{clients: []domain.Client{{ID: uuid.New(), FirstName: "Old"}}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	created, err := s.AddClient(context.Background(), domain.Client{FirstName: "New", LastName: "Client"})
	if err != nil {
		t.Fatalf("AddClient() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("AddClient() returned row without canonical id")
	}

	clients := s.Clients()
	if len(clients) != 2 || clients[0].FirstName != "New" {
		t.Errorf("cache head = %+v, want the new client first", clients[0])
	}
}

func TestFailedWriteLeavesCacheUntouched(t *testing.T) {
	existing := domain.Session{ID: uuid.New(), Date: "2024-01-01", Time: "10:00", Status: domain.SessionScheduled}
	backend := &fakeBackend{sessions: []domain.Session{existing}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	backend.failWrites = true

	if _, err := s.AddClient(context.Background(), domain.Client{FirstName: "X", LastName: "Y"}); !errors.Is(err, errBackend) {
		t.Errorf("AddClient() error = %v, want %v", err, errBackend)
	}
	if _, err := s.AddSessions(context.Background(), domain.Session{Date: "2024-02-01"}, domain.Recurrence{}); !errors.Is(err, errBackend) {
		t.Errorf("AddSessions() error = %v, want %v", err, errBackend)
	}
	if err := s.DeleteSession(context.Background(), existing.ID); !errors.Is(err, errBackend) {
		t.Errorf("DeleteSession() error = %v, want %v", err, errBackend)
	}
	if _, err := s.AddNote(context.Background(), domain.Note{SessionID: existing.ID, Content: "x"}); !errors.Is(err, errBackend) {
		t.Errorf("AddNote() error = %v, want %v", err, errBackend)
	}

	if len(s.Clients()) != 0 {
		t.Error("failed AddClient() modified cache")
	}
	sessions := s.Sessions()
	if len(sessions) != 1 || sessions[0].Status != domain.SessionScheduled {
		t.Errorf("failed writes modified session cache: %+v", sessions)
	}
	if len(s.Notes()) != 0 {
		t.Error("failed AddNote() modified cache")
	}
}

func TestAddSessionsSplicesSeriesAtHead(t *testing.T) {
	existing := domain.Session{ID: uuid.New(), Date: "2023-12-01"}
	backend := &fakeBackend{sessions: []domain.Session{existing}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	created, err := s.AddSessions(context.Background(),
		domain.Session{Date: "2024-01-01", Time: "10:00", Duration: 60},
		domain.Recurrence{Frequency: domain.RecurWeekly, EndDate: "2024-01-08"})
	if err != nil {
		t.Fatalf("AddSessions() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d sessions, want 2", len(created))
	}

	sessions := s.Sessions()
	if len(sessions) != 3 || sessions[2].ID != existing.ID {
		t.Errorf("cache after series insert = %+v", sessions)
	}
}

func TestCompleteAndCancelReplaceCachedRow(t *testing.T) {
	a := domain.Session{ID: uuid.New(), Status: domain.SessionScheduled}
	b := domain.Session{ID: uuid.New(), Status: domain.SessionScheduled}
	backend := &fakeBackend{sessions: []domain.Session{a, b}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := s.CompleteSession(context.Background(), a.ID); err != nil {
		t.Fatalf("CompleteSession() error = %v", err)
	}
	if _, err := s.CancelSession(context.Background(), b.ID); err != nil {
		t.Fatalf("CancelSession() error = %v", err)
	}

	got, ok := s.Session(a.ID)
	if !ok || got.Status != domain.SessionCompleted {
		t.Errorf("session a = %+v, want completed", got)
	}
	got, ok = s.Session(b.ID)
	if !ok || got.Status != domain.SessionCancelled {
		t.Errorf("session b = %+v, want cancelled", got)
	}
}

func TestUpdateSessionReplacesInPlace(t *testing.T) {
	a := domain.Session{ID: uuid.New(), Date: "2024-01-01", Time: "10:00", Duration: 60}
	b := domain.Session{ID: uuid.New(), Date: "2024-01-02", Time: "11:00", Duration: 60}
	backend := &fakeBackend{sessions: []domain.Session{a, b}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := b
	changed.Duration = 90
	if _, err := s.UpdateSession(context.Background(), changed); err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}

	sessions := s.Sessions()
	if sessions[0].ID != a.ID || sessions[1].Duration != 90 {
		t.Errorf("sessions after update = %+v", sessions)
	}
}

func TestDeleteSessionRemovesRow(t *testing.T) {
	a := domain.Session{ID: uuid.New(), Date: "2024-01-01"}
	b := domain.Session{ID: uuid.New(), Date: "2024-01-02"}
	backend := &fakeBackend{sessions: []domain.Session{a, b}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := s.DeleteSession(context.Background(), a.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}

	sessions := s.Sessions()
	if len(sessions) != 1 || sessions[0].ID != b.ID {
		t.Errorf("sessions after delete = %+v", sessions)
	}
}

func TestAddNoteCompletesCachedSession(t *testing.T) {
	sess := domain.Session{ID: uuid.New(), Date: "2024-01-01", Time: "10:00", Status: domain.SessionScheduled}
	backend := &fakeBackend{sessions: []domain.Session{sess}}
	s := New(backend)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	note, err := s.AddNote(context.Background(), domain.Note{SessionID: sess.ID, Content: "session notes"})
	if err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	notes := s.Notes()
	if len(notes) != 1 || notes[0].ID != note.ID {
		t.Errorf("notes cache = %+v", notes)
	}

	sessions := s.Sessions()
	if sessions[0].Status != domain.SessionCompleted {
		t.Errorf("session status = %s, want completed", sessions[0].Status)
	}
}
