package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/analytics"
	"github.com/practiq/practiq_backend/internal/domain"
	"github.com/practiq/practiq_backend/internal/service/client"
	"github.com/practiq/practiq_backend/internal/store"
)

// upcomingLimit caps the overview's upcoming list.
const upcomingLimit = 5

type DashboardHandler struct {
	ws *store.Manager
}

func NewDashboardHandler(ws *store.Manager) *DashboardHandler {
	return &DashboardHandler{ws: ws}
}

// sessionView decorates a session with its display timestamp.
type sessionView struct {
	domain.Session
	DisplayTime string `json:"display_time"`
}

func newSessionView(s domain.Session) sessionView {
	return sessionView{Session: s, DisplayTime: analytics.FormatDateTime(s.Date, s.Time)}
}

// GET /dashboard/overview
func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return internalError(c)
	}

	now := time.Now()
	sessions := st.Sessions()

	activeClients := 0
	for _, cl := range st.Clients() {
		if cl.Status == domain.ClientActive {
			activeClients++
		}
	}

	today := analytics.ComputeTodayStats(sessions, now)

	upcoming := analytics.Upcoming(sessions, now)
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	upcomingViews := make([]sessionView, len(upcoming))
	for i, s := range upcoming {
		upcomingViews[i] = newSessionView(s)
	}

	var next *sessionView
	if n := analytics.Next(sessions, now); n != nil {
		v := newSessionView(*n)
		next = &v
	}

	return ok(c, fiber.Map{
		"active_clients": activeClients,
		"today": fiber.Map{
			"total":           today.Total,
			"completed":       today.Completed,
			"completion_rate": today.CompletionRate,
		},
		"next_session": next,
		"upcoming":     upcomingViews,
	})
}

// GET /dashboard/analytics?range=today|week|month|year|custom&start=&end=
func (h *DashboardHandler) Analytics(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Range string `query:"range"`
		Start string `query:"start"`
		End   string `query:"end"`
	}
	_ = c.Bind().Query(&q)

	now := time.Now()
	var start, end time.Time
	switch q.Range {
	case "", "today", "week", "month", "year":
		start, end = analytics.Resolve(analytics.Range(q.Range), now)
	case "custom":
		var err error
		start, end, err = analytics.CustomRange(q.Start, q.End)
		if err != nil {
			if errors.Is(err, analytics.ErrInvalidRange) {
				return badRequest(c, "start date is after end date")
			}
			return badRequest(c, "start and end must be YYYY-MM-DD")
		}
	default:
		return badRequest(c, "unknown range")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return internalError(c)
	}

	completed := analytics.CompletedWithin(st.Sessions(), start, end)
	byType := analytics.HoursByType(completed)

	hours := make(map[string]float64, len(byType))
	for typ, h := range byType {
		hours[string(typ)] = h
	}

	return ok(c, fiber.Map{
		"start":         start.Format("2006-01-02"),
		"end":           end.Format("2006-01-02"),
		"sessions":      len(completed),
		"hours_by_type": hours,
		"total_hours":   analytics.TotalHours(byType),
	})
}

// GET /clients/:id/summary
func (h *DashboardHandler) ClientSummary(c fiber.Ctx) error {
	therapistID, valid := therapistIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	st, err := h.ws.For(c.Context(), therapistID)
	if err != nil {
		return internalError(c)
	}

	cl, found := st.Client(clientID)
	if !found {
		return notFound(c, client.ErrNotFound.Error())
	}

	sessions := st.Sessions()
	clientSessions := sessions[:0]
	for _, s := range sessions {
		if s.ClientID == clientID {
			clientSessions = append(clientSessions, s)
		}
	}

	total := analytics.ClientSessionTime(clientSessions, clientID)

	var next *sessionView
	if n := analytics.Next(clientSessions, time.Now()); n != nil {
		v := newSessionView(*n)
		next = &v
	}

	return ok(c, fiber.Map{
		"client": cl,
		"session_time": fiber.Map{
			"hours":   total.Hours,
			"minutes": total.Minutes,
		},
		"next_session":   next,
		"total_sessions": len(clientSessions),
	})
}
