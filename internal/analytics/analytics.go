// Package analytics derives view-ready aggregates from session lists:
// date-range bucketing, duration aggregation, completion rates, next and
// upcoming session selection, and recurrence-window expansion. All
// functions are pure and never mutate their input.
package analytics

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
	displayLayout  = "Jan 2, 2006 3:04 PM"

	// InvalidDateLabel is the display sentinel for unparseable timestamps.
	InvalidDateLabel = "Invalid date"
)

var ErrInvalidRange = errors.New("analytics: range start is after end")

type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// Resolve maps a named range onto an inclusive [start, end] day window
// around now. Weeks start on Monday.
func Resolve(r Range, now time.Time) (time.Time, time.Time) {
	day := startOfDay(now)

	switch r {
	case RangeWeek:
		// back up to Monday
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, endOfDay(start.AddDate(0, 0, 6))
	case RangeMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, endOfDay(start.AddDate(0, 1, -1))
	case RangeYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return start, endOfDay(time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location()))
	default:
		return day, endOfDay(day)
	}
}

// CustomRange parses an explicit [start, end] window from YYYY-MM-DD
// bounds. A start after end is rejected.
func CustomRange(startISO, endISO string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, startISO, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(dateLayout, endISO, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, endOfDay(end), nil
}

// CompletedWithin returns the completed sessions whose date falls inside
// [start, end]. Sessions with unparseable dates are skipped.
func CompletedWithin(sessions []domain.Session, start, end time.Time) []domain.Session {
	var out []domain.Session
	for _, s := range sessions {
		if s.Status != domain.SessionCompleted {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, s.Date, time.Local)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// HoursByType sums duration/60 per session type over completed sessions.
func HoursByType(sessions []domain.Session) map[domain.SessionType]float64 {
	out := make(map[domain.SessionType]float64)
	for _, s := range sessions {
		if s.Status != domain.SessionCompleted {
			continue
		}
		out[s.Type] += float64(s.Duration) / 60
	}
	return out
}

// TotalHours sums a per-type aggregation back into a single total.
func TotalHours(byType map[domain.SessionType]float64) float64 {
	var total float64
	for _, h := range byType {
		total += h
	}
	return total
}

// TodayStats describes today's session load.
type TodayStats struct {
	Total          int
	Completed      int
	CompletionRate int // 0..100, 0 when no sessions today
}

// ComputeTodayStats counts today's sessions across all statuses and
// derives the completion rate.
func ComputeTodayStats(sessions []domain.Session, now time.Time) TodayStats {
	today := now.Format(dateLayout)

	var st TodayStats
	for _, s := range sessions {
		if s.Date != today {
			continue
		}
		st.Total++
		if s.Status == domain.SessionCompleted {
			st.Completed++
		}
	}

	if st.Total > 0 {
		st.CompletionRate = int(math.Round(100 * float64(st.Completed) / float64(st.Total)))
	}
	return st
}

// Upcoming returns the sessions with a combined date-time strictly in the
// future and status != cancelled, sorted ascending. Sessions whose
// timestamp cannot be parsed are excluded.
func Upcoming(sessions []domain.Session, now time.Time) []domain.Session {
	type timed struct {
		at time.Time
		s  domain.Session
	}

	var future []timed
	for _, s := range sessions {
		if s.Status == domain.SessionCancelled {
			continue
		}
		at, err := CombineDateTime(s.Date, s.Time)
		if err != nil {
			continue
		}
		if !at.After(now) {
			continue
		}
		future = append(future, timed{at: at, s: s})
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].at.Before(future[j].at)
	})

	out := make([]domain.Session, len(future))
	for i, f := range future {
		out[i] = f.s
	}
	return out
}

// Next returns the soonest upcoming session, or nil when there is none.
func Next(sessions []domain.Session, now time.Time) *domain.Session {
	up := Upcoming(sessions, now)
	if len(up) == 0 {
		return nil
	}
	return &up[0]
}

// Expand produces the creation dates for a recurrence directive: the base
// date plus k steps while the result stays inside the end date. A missing
// end date or frequency "none" yields only the base date.
func Expand(baseDate string, rec domain.Recurrence) []string {
	if rec.Frequency == "" || rec.Frequency == domain.RecurNone || rec.EndDate == "" {
		return []string{baseDate}
	}

	base, err := time.ParseInLocation(dateLayout, baseDate, time.Local)
	if err != nil {
		return []string{baseDate}
	}
	end, err := time.ParseInLocation(dateLayout, rec.EndDate, time.Local)
	if err != nil {
		return []string{baseDate}
	}

	var out []string
	for d := base; !d.After(end); {
		out = append(out, d.Format(dateLayout))
		switch rec.Frequency {
		case domain.RecurWeekly:
			d = d.AddDate(0, 0, 7)
		case domain.RecurBiweekly:
			d = d.AddDate(0, 0, 14)
		case domain.RecurMonthly:
			d = d.AddDate(0, 1, 0)
		default:
			return out
		}
	}

	if len(out) == 0 {
		// end date precedes base: still schedule the base session
		out = []string{baseDate}
	}
	return out
}

// ClientTime is a per-client completed-session-time summary.
type ClientTime struct {
	Hours   int
	Minutes int
}

// ClientSessionTime sums completed session durations for one client and
// reports them as hours plus leftover minutes.
func ClientSessionTime(sessions []domain.Session, clientID uuid.UUID) ClientTime {
	var total int
	for _, s := range sessions {
		if s.ClientID != clientID || s.Status != domain.SessionCompleted {
			continue
		}
		total += s.Duration
	}
	return ClientTime{Hours: total / 60, Minutes: total % 60}
}

// CombineDateTime parses a session's date and time strings jointly.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, date+"T"+timeOfDay, time.Local)
}

// FormatDateTime renders a session timestamp for display, degrading to
// the invalid-date label instead of failing.
func FormatDateTime(date, timeOfDay string) string {
	at, err := CombineDateTime(date, timeOfDay)
	if err != nil {
		return InvalidDateLabel
	}
	return at.Format(displayLayout)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
