package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/service/session"
	"github.com/practiq/practiq_backend/internal/store"
)

type SessionHandler struct {
	ws *store.Manager
}

func NewSessionHandler(ws *store.Manager) *SessionHandler {
	return &SessionHandler{ws: ws}
}

func mapSessionError(c fiber.Ctx, err error) error {
	var vErr *session.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fieldErrors(c, vErr.Fields)
	case errors.Is(err, session.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrAlreadyCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, session.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		ClientID string `query:"client_id"`
		Status   string `query:"status"`
		From     string `query:"from"`
		To       string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	var clientID uuid.UUID
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		clientID = id
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	sessions := st.Sessions()
	filtered := sessions[:0]
	for _, s := range sessions {
		if clientID != uuid.Nil && s.ClientID != clientID {
			continue
		}
		if q.Status != "" && string(s.Status) != q.Status {
			continue
		}
		// ISO dates compare correctly as strings
		if q.From != "" && s.Date < q.From {
			continue
		}
		if q.To != "" && s.Date > q.To {
			continue
		}
		filtered = append(filtered, s)
	}

	return ok(c, filtered)
}

// POST /sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ClientID   string `json:"client_id"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Duration   int    `json:"duration"`
		Type       string `json:"type"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
		Recurrence *struct {
			Frequency string `json:"frequency"`
			EndDate   string `json:"end_date"`
		} `json:"recurrence"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	rec := domain.Recurrence{Frequency: domain.RecurNone}
	if body.Recurrence != nil {
		rec = domain.Recurrence{
			Frequency: domain.RecurrenceFrequency(body.Recurrence.Frequency),
			EndDate:   body.Recurrence.EndDate,
		}
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	sessions, err := st.AddSessions(c.Context(), domain.Session{
		ClientID: clientID,
		Date:     body.Date,
		Time:     body.Time,
		Duration: body.Duration,
		Type:     domain.SessionType(body.Type),
		Status:   domain.SessionStatus(body.Status),
		Notes:    body.Notes,
	}, rec)
	if err != nil {
		return mapSessionError(c, err)
	}

	return created(c, sessions)
}

// GET /sessions/:id
func (h *SessionHandler) Get(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	s, found := st.Session(sessionID)
	if !found {
		return notFound(c, session.ErrNotFound.Error())
	}
	return ok(c, s)
}

// PATCH /sessions/:id
func (h *SessionHandler) Update(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Date     *string `json:"date"`
		Time     *string `json:"time"`
		Duration *int    `json:"duration"`
		Type     *string `json:"type"`
		Status   *string `json:"status"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	cur, found := st.Session(sessionID)
	if !found {
		return notFound(c, session.ErrNotFound.Error())
	}

	if body.Date != nil {
		cur.Date = *body.Date
	}
	if body.Time != nil {
		cur.Time = *body.Time
	}
	if body.Duration != nil {
		cur.Duration = *body.Duration
	}
	if body.Type != nil {
		cur.Type = domain.SessionType(*body.Type)
	}
	if body.Status != nil {
		cur.Status = domain.SessionStatus(*body.Status)
	}
	if body.Notes != nil {
		cur.Notes = *body.Notes
	}

	updated, err := st.UpdateSession(c.Context(), cur)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, updated)
}

// PATCH /sessions/:id/complete
func (h *SessionHandler) Complete(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	updated, err := st.CompleteSession(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, updated)
}

// PATCH /sessions/:id/cancel
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	updated, err := st.CancelSession(c.Context(), sessionID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, updated)
}

// DELETE /sessions/:id
func (h *SessionHandler) Delete(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapSessionError(c, err)
	}

	if err := st.DeleteSession(c.Context(), sessionID); err != nil {
		return mapSessionError(c, err)
	}
	return noContent(c)
}
