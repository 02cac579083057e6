package session

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/analytics"
	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/repo"
	entclient "github.com/practiq/practiq_backend/internal/repo/clientrecord"
	entsession "github.com/practiq/practiq_backend/internal/repo/session"
	"github.com/practiq/practiq_backend/internal/validation"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSessionRequest struct {
	ClientID   uuid.UUID
	Date       string
	Time       string
	Duration   int
	Type       string
	Status     string
	Notes      string
	Recurrence *domain.Recurrence
}

type UpdateSessionRequest struct {
	Date     *string
	Time     *string
	Duration *int
	Type     *string
	Status   *string
	Notes    *string
}

type ListSessionsRequest struct {
	ClientID *uuid.UUID
	Status   *string
	From     *string // YYYY-MM-DD inclusive
	To       *string // YYYY-MM-DD inclusive
}

// ValidationError carries field-level messages for expected-invalid input.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string { return "session validation failed" }

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create inserts a session, or the full recurring series when a
	// recurrence rule is given. All rows of a series commit together.
	Create(ctx context.Context, therapistID uuid.UUID, req CreateSessionRequest) ([]*repo.Session, error)
	GetByID(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error)
	List(ctx context.Context, therapistID uuid.UUID, req ListSessionsRequest) ([]*repo.Session, error)
	Update(ctx context.Context, therapistID, sessionID uuid.UUID, req UpdateSessionRequest) (*repo.Session, error)
	Complete(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error)
	Cancel(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error)
	Delete(ctx context.Context, therapistID, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type sessionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &sessionService{db: db}
}

func (s *sessionService) Create(ctx context.Context, therapistID uuid.UUID, req CreateSessionRequest) ([]*repo.Session, error) {
	rec, fieldErrs := validation.ValidateSession(validation.SessionInput{
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Type:     req.Type,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// The client must belong to the calling therapist.
	exists, err := s.db.ClientRecord.Query().
		Where(entclient.ID(req.ClientID), entclient.TherapistID(therapistID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	dates := []string{rec.Date}
	if req.Recurrence != nil && req.Recurrence.Frequency != domain.RecurNone {
		dates = analytics.Expand(rec.Date, *req.Recurrence)
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

	builders := make([]*repo.SessionCreate, 0, len(dates))
	for _, date := range dates {
		c := tx.Session.Create().
			SetTherapistID(therapistID).
			SetClientID(req.ClientID).
			SetDate(date).
			SetStartTime(rec.Time).
			SetDurationMinutes(rec.Duration).
			SetSessionType(entsession.SessionType(rec.Type)).
			SetStatus(entsession.Status(rec.Status))
		if rec.Notes != "" {
			c = c.SetNotes(rec.Notes)
		}
		builders = append(builders, c)
	}

	sessions, err := tx.Session.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sessions: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) GetByID(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.db.Session.Query().
		Where(entsession.ID(sessionID), entsession.TherapistID(therapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) List(ctx context.Context, therapistID uuid.UUID, req ListSessionsRequest) ([]*repo.Session, error) {
	q := s.db.Session.Query().
		Where(entsession.TherapistID(therapistID))

	if req.ClientID != nil {
		q = q.Where(entsession.ClientID(*req.ClientID))
	}
	if req.Status != nil {
		switch *req.Status {
		case "scheduled", "completed", "cancelled":
			q = q.Where(entsession.StatusEQ(entsession.Status(*req.Status)))
		default:
			return nil, ErrInvalidStatus
		}
	}
	if req.From != nil {
		q = q.Where(entsession.DateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entsession.DateLTE(*req.To))
	}

	q = q.Order(
		entsession.ByDate(sql.OrderAsc()),
		entsession.ByStartTime(sql.OrderAsc()),
	)

	sessions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Update(ctx context.Context, therapistID, sessionID uuid.UUID, req UpdateSessionRequest) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, therapistID, sessionID)
	if err != nil {
		return nil, err
	}

	fieldErrs := validation.FieldErrors{}
	u := s.db.Session.UpdateOne(sess)

	if req.Date != nil {
		if _, parseErr := time.Parse("2006-01-02", *req.Date); parseErr != nil {
			fieldErrs["date"] = "date must be YYYY-MM-DD"
		} else {
			u = u.SetDate(*req.Date)
		}
	}
	if req.Time != nil {
		if _, parseErr := time.Parse("15:04", *req.Time); parseErr != nil {
			fieldErrs["time"] = "time must be HH:MM"
		} else {
			u = u.SetStartTime(*req.Time)
		}
	}
	if req.Duration != nil {
		if *req.Duration < 15 || *req.Duration > 180 {
			fieldErrs["duration"] = "duration must be between 15 and 180 minutes"
		} else {
			u = u.SetDurationMinutes(*req.Duration)
		}
	}
	if req.Type != nil {
		if !domain.SessionType(*req.Type).Valid() {
			fieldErrs["type"] = "unknown session type"
		} else {
			u = u.SetSessionType(entsession.SessionType(*req.Type))
		}
	}
	if req.Status != nil && *req.Status != string(sess.Status) {
		// completed and cancelled are terminal
		if sess.Status == entsession.StatusCompleted {
			return nil, ErrAlreadyCompleted
		}
		if sess.Status == entsession.StatusCancelled {
			return nil, ErrAlreadyCancelled
		}
		switch *req.Status {
		case "completed":
			u = u.SetStatus(entsession.StatusCompleted).SetCompletedAt(time.Now())
		case "cancelled":
			u = u.SetStatus(entsession.StatusCancelled).SetCancelledAt(time.Now())
		default:
			fieldErrs["status"] = "unknown session status"
		}
	}
	if req.Notes != nil {
		u = u.SetNotes(*req.Notes)
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) Complete(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, therapistID, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status == entsession.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	updated, err := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) Cancel(ctx context.Context, therapistID, sessionID uuid.UUID) (*repo.Session, error) {
	sess, err := s.GetByID(ctx, therapistID, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status == entsession.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if sess.Status == entsession.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	updated, err := s.db.Session.UpdateOne(sess).
		SetStatus(entsession.StatusCancelled).
		SetCancelledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) Delete(ctx context.Context, therapistID, sessionID uuid.UUID) error {
	affected, err := s.db.Session.Delete().
		Where(entsession.ID(sessionID), entsession.TherapistID(therapistID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
