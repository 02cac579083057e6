package note

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/repo"
	entclient "github.com/practiq/practiq_backend/internal/repo/clientrecord"
	entsession "github.com/practiq/practiq_backend/internal/repo/session"
	entnote "github.com/practiq/practiq_backend/internal/repo/therapynote"
	"github.com/practiq/practiq_backend/internal/validation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateNoteRequest struct {
	SessionID uuid.UUID
	Content   string
}

type ListNotesRequest struct {
	ClientID  *uuid.UUID
	SessionID *uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create stores a note against a session and marks that session
	// completed. Both writes commit together or not at all.
	Create(ctx context.Context, therapistID uuid.UUID, req CreateNoteRequest) (*repo.TherapyNote, error)
	GetByID(ctx context.Context, therapistID, noteID uuid.UUID) (*repo.TherapyNote, error)
	List(ctx context.Context, therapistID uuid.UUID, req ListNotesRequest) ([]*repo.TherapyNote, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type noteService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &noteService{db: db}
}

func (s *noteService) Create(ctx context.Context, therapistID uuid.UUID, req CreateNoteRequest) (*repo.TherapyNote, error) {
	content, fieldErrs := validation.ValidateNote(validation.NoteInput{Content: req.Content})
	if fieldErrs != nil {
		return nil, ErrEmptyContent
	}

	sess, err := s.db.Session.Query().
		Where(entsession.ID(req.SessionID), entsession.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	n, err := tx.TherapyNote.Create().
		SetTherapistID(therapistID).
		SetClientID(sess.ClientID).
		SetSessionID(sess.ID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	if sess.Status != entsession.StatusCompleted {
		err = tx.Session.UpdateOne(sess).
			SetStatus(entsession.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("complete session: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return n, nil
}

func (s *noteService) GetByID(ctx context.Context, therapistID, noteID uuid.UUID) (*repo.TherapyNote, error) {
	n, err := s.db.TherapyNote.Query().
		Where(entnote.ID(noteID), entnote.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (s *noteService) List(ctx context.Context, therapistID uuid.UUID, req ListNotesRequest) ([]*repo.TherapyNote, error) {
	if req.ClientID != nil {
		exists, err := s.db.ClientRecord.Query().
			Where(entclient.ID(*req.ClientID), entclient.TherapistID(therapistID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check client: %w", err)
		}
		if !exists {
			return nil, ErrClientNotFound
		}
	}

	q := s.db.TherapyNote.Query().
		Where(entnote.TherapistID(therapistID))

	if req.ClientID != nil {
		q = q.Where(entnote.ClientID(*req.ClientID))
	}
	if req.SessionID != nil {
		q = q.Where(entnote.SessionID(*req.SessionID))
	}

	notes, err := q.Order(entnote.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
