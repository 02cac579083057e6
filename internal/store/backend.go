package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/repo"
	"github.com/practiq/practiq_backend/internal/service/client"
	"github.com/practiq/practiq_backend/internal/service/note"
	"github.com/practiq/practiq_backend/internal/service/session"
)

// serviceBackend adapts the persistence services to the Backend
// interface with the therapist scope bound once.
type serviceBackend struct {
	therapistID uuid.UUID
	clients     client.Service
	sessions    session.Service
	notes       note.Service
}

func (b *serviceBackend) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := b.clients.List(ctx, b.therapistID, client.ListClientsRequest{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Client, len(rows))
	for i, r := range rows {
		out[i] = clientFromRepo(r)
	}
	return out, nil
}

func (b *serviceBackend) ListSessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := b.sessions.List(ctx, b.therapistID, session.ListSessionsRequest{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Session, len(rows))
	for i, r := range rows {
		out[i] = sessionFromRepo(r)
	}
	return out, nil
}

func (b *serviceBackend) ListNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := b.notes.List(ctx, b.therapistID, note.ListNotesRequest{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Note, len(rows))
	for i, r := range rows {
		out[i] = noteFromRepo(r)
	}
	return out, nil
}

func (b *serviceBackend) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	created, err := b.clients.Create(ctx, b.therapistID, client.CreateClientRequest{
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		DateOfBirth:       c.DateOfBirth,
		Address:           c.Address,
		EmergencyContact:  c.EmergencyContact,
		EmergencyPhone:    c.EmergencyPhone,
		InsuranceProvider: c.InsuranceProvider,
		Notes:             c.Notes,
	})
	if err != nil {
		return domain.Client{}, err
	}
	return clientFromRepo(created), nil
}

func (b *serviceBackend) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	status := string(c.Status)
	updated, err := b.clients.Update(ctx, b.therapistID, c.ID, client.UpdateClientRequest{
		FirstName:         &c.FirstName,
		LastName:          &c.LastName,
		Email:             &c.Email,
		Phone:             &c.Phone,
		DateOfBirth:       &c.DateOfBirth,
		Address:           &c.Address,
		EmergencyContact:  &c.EmergencyContact,
		EmergencyPhone:    &c.EmergencyPhone,
		InsuranceProvider: &c.InsuranceProvider,
		Notes:             &c.Notes,
		Status:            &status,
	})
	if err != nil {
		return domain.Client{}, err
	}
	return clientFromRepo(updated), nil
}

func (b *serviceBackend) CreateSessions(ctx context.Context, base domain.Session, rec domain.Recurrence) ([]domain.Session, error) {
	created, err := b.sessions.Create(ctx, b.therapistID, session.CreateSessionRequest{
		ClientID:   base.ClientID,
		Date:       base.Date,
		Time:       base.Time,
		Duration:   base.Duration,
		Type:       string(base.Type),
		Status:     string(base.Status),
		Notes:      base.Notes,
		Recurrence: &rec,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Session, len(created))
	for i, r := range created {
		out[i] = sessionFromRepo(r)
	}
	return out, nil
}

func (b *serviceBackend) UpdateSession(ctx context.Context, s domain.Session) (domain.Session, error) {
	typ := string(s.Type)
	status := string(s.Status)
	updated, err := b.sessions.Update(ctx, b.therapistID, s.ID, session.UpdateSessionRequest{
		Date:     &s.Date,
		Time:     &s.Time,
		Duration: &s.Duration,
		Type:     &typ,
		Status:   &status,
		Notes:    &s.Notes,
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sessionFromRepo(updated), nil
}

func (b *serviceBackend) CompleteSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	updated, err := b.sessions.Complete(ctx, b.therapistID, id)
	if err != nil {
		return domain.Session{}, err
	}
	return sessionFromRepo(updated), nil
}

func (b *serviceBackend) CancelSession(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	updated, err := b.sessions.Cancel(ctx, b.therapistID, id)
	if err != nil {
		return domain.Session{}, err
	}
	return sessionFromRepo(updated), nil
}

func (b *serviceBackend) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return b.sessions.Delete(ctx, b.therapistID, id)
}

func (b *serviceBackend) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	created, err := b.notes.Create(ctx, b.therapistID, note.CreateNoteRequest{
		SessionID: n.SessionID,
		Content:   n.Content,
	})
	if err != nil {
		return domain.Note{}, err
	}
	return noteFromRepo(created), nil
}

// ---------------------------------------------------------------------------
// Row conversions
// ---------------------------------------------------------------------------

func clientFromRepo(r *repo.ClientRecord) domain.Client {
	return domain.Client{
		ID:                r.ID,
		TherapistID:       r.TherapistID,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             strDeref(r.Email),
		Phone:             strDeref(r.Phone),
		DateOfBirth:       strDeref(r.DateOfBirth),
		Address:           strDeref(r.Address),
		EmergencyContact:  strDeref(r.EmergencyContact),
		EmergencyPhone:    strDeref(r.EmergencyPhone),
		InsuranceProvider: strDeref(r.InsuranceProvider),
		Notes:             strDeref(r.Notes),
		Status:            domain.ClientStatus(r.Status),
		CreatedAt:         r.CreatedAt,
	}
}

func sessionFromRepo(r *repo.Session) domain.Session {
	return domain.Session{
		ID:          r.ID,
		TherapistID: r.TherapistID,
		ClientID:    r.ClientID,
		Date:        r.Date,
		Time:        r.StartTime,
		Duration:    r.DurationMinutes,
		Type:        domain.SessionType(r.SessionType),
		Status:      domain.SessionStatus(r.Status),
		Notes:       strDeref(r.Notes),
		CreatedAt:   r.CreatedAt,
	}
}

func noteFromRepo(r *repo.TherapyNote) domain.Note {
	return domain.Note{
		ID:          r.ID,
		TherapistID: r.TherapistID,
		ClientID:    r.ClientID,
		SessionID:   r.SessionID,
		Content:     r.Content,
		CreatedAt:   r.CreatedAt,
	}
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
