package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/service/note"
	"github.com/practiq/practiq_backend/internal/store"
)

type NoteHandler struct {
	ws *store.Manager
}

func NewNoteHandler(ws *store.Manager) *NoteHandler {
	return &NoteHandler{ws: ws}
}

func mapNoteError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, note.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, note.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, note.ErrEmptyContent):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /notes?client_id=&session_id=
func (h *NoteHandler) List(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		ClientID  string `query:"client_id"`
		SessionID string `query:"session_id"`
	}
	_ = c.Bind().Query(&q)

	var clientID, sessionID uuid.UUID
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		clientID = id
	}
	if q.SessionID != "" {
		id, err := uuid.Parse(q.SessionID)
		if err != nil {
			return badRequest(c, "invalid session_id")
		}
		sessionID = id
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapNoteError(c, err)
	}

	notes := st.Notes()
	filtered := notes[:0]
	for _, n := range notes {
		if clientID != uuid.Nil && n.ClientID != clientID {
			continue
		}
		if sessionID != uuid.Nil && n.SessionID != sessionID {
			continue
		}
		filtered = append(filtered, n)
	}

	return ok(c, filtered)
}

// POST /notes
func (h *NoteHandler) Create(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		SessionID string `json:"session_id"`
		Content   string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sessionID, err := uuid.Parse(body.SessionID)
	if err != nil {
		return badRequest(c, "invalid session_id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return mapNoteError(c, err)
	}

	n, err := st.AddNote(c.Context(), domain.Note{
		SessionID: sessionID,
		Content:   body.Content,
	})
	if err != nil {
		return mapNoteError(c, err)
	}

	return created(c, n)
}
