package analytics

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/practiq/practiq_backend/internal/domain"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	at, err := time.ParseInLocation(dateTimeLayout, value, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return at
}

func TestResolve(t *testing.T) {
	// Wednesday
	now := mustTime(t, "2024-03-13T10:30")

	tests := []struct {
		name      string
		r         Range
		wantStart string
		wantEnd   string
	}{
		{"today", RangeToday, "2024-03-13", "2024-03-13"},
		{"week starts monday", RangeWeek, "2024-03-11", "2024-03-17"},
		{"month", RangeMonth, "2024-03-01", "2024-03-31"},
		{"year", RangeYear, "2024-01-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Resolve(tt.r, now)
			if got := start.Format(dateLayout); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format(dateLayout); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
			if !start.Before(end) {
				t.Errorf("start %v not before end %v", start, end)
			}
		})
	}
}

func TestResolveWeekOnMondayAndSunday(t *testing.T) {
	monday := mustTime(t, "2024-03-11T00:00")
	start, _ := Resolve(RangeWeek, monday)
	if got := start.Format(dateLayout); got != "2024-03-11" {
		t.Errorf("monday week start = %s, want 2024-03-11", got)
	}

	sunday := mustTime(t, "2024-03-17T23:00")
	start, end := Resolve(RangeWeek, sunday)
	if got := start.Format(dateLayout); got != "2024-03-11" {
		t.Errorf("sunday week start = %s, want 2024-03-11", got)
	}
	if got := end.Format(dateLayout); got != "2024-03-17" {
		t.Errorf("sunday week end = %s, want 2024-03-17", got)
	}
}

func TestCustomRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"valid window", "2024-01-01", "2024-02-01", nil},
		{"single day", "2024-01-01", "2024-01-01", nil},
		{"start after end", "2024-02-01", "2024-01-01", ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := CustomRange(tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CustomRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if start.After(end) {
				t.Errorf("start %v after end %v", start, end)
			}
		})
	}

	if _, _, err := CustomRange("not-a-date", "2024-01-01"); err == nil {
		t.Error("CustomRange() accepted malformed start date")
	}
}

func TestHoursByTypePartition(t *testing.T) {
	sessions := []domain.Session{
		{Type: domain.TypeIndividual, Duration: 60, Status: domain.SessionCompleted},
		{Type: domain.TypeIndividual, Duration: 45, Status: domain.SessionCompleted},
		{Type: domain.TypeCouple, Duration: 90, Status: domain.SessionCompleted},
		{Type: domain.TypeFamily, Duration: 30, Status: domain.SessionCompleted},
		// non-completed sessions must not contribute
		{Type: domain.TypeIndividual, Duration: 60, Status: domain.SessionScheduled},
		{Type: domain.TypeCouple, Duration: 60, Status: domain.SessionCancelled},
	}

	byType := HoursByType(sessions)

	// grouping is a partition: grouped sum equals ungrouped sum
	var ungrouped float64
	for _, s := range sessions {
		if s.Status == domain.SessionCompleted {
			ungrouped += float64(s.Duration) / 60
		}
	}
	if got := TotalHours(byType); math.Abs(got-ungrouped) > 1e-9 {
		t.Errorf("TotalHours() = %v, ungrouped sum = %v", got, ungrouped)
	}

	if got := byType[domain.TypeIndividual]; math.Abs(got-1.75) > 1e-9 {
		t.Errorf("individual hours = %v, want 1.75", got)
	}
	if _, ok := byType[domain.TypeTelehealth]; ok {
		t.Error("empty type present in aggregation")
	}
}

func TestComputeTodayStats(t *testing.T) {
	now := mustTime(t, "2024-05-10T12:00")

	tests := []struct {
		name     string
		sessions []domain.Session
		want     TodayStats
	}{
		{
			name:     "no sessions today",
			sessions: []domain.Session{{Date: "2024-05-09", Status: domain.SessionCompleted}},
			want:     TodayStats{},
		},
		{
			name: "mixed statuses count toward total",
			sessions: []domain.Session{
				{Date: "2024-05-10", Status: domain.SessionCompleted},
				{Date: "2024-05-10", Status: domain.SessionScheduled},
				{Date: "2024-05-10", Status: domain.SessionCancelled},
			},
			want: TodayStats{Total: 3, Completed: 1, CompletionRate: 33},
		},
		{
			name: "all completed",
			sessions: []domain.Session{
				{Date: "2024-05-10", Status: domain.SessionCompleted},
				{Date: "2024-05-10", Status: domain.SessionCompleted},
			},
			want: TodayStats{Total: 2, Completed: 2, CompletionRate: 100},
		},
		{
			name: "two of three rounds up",
			sessions: []domain.Session{
				{Date: "2024-05-10", Status: domain.SessionCompleted},
				{Date: "2024-05-10", Status: domain.SessionCompleted},
				{Date: "2024-05-10", Status: domain.SessionScheduled},
			},
			want: TodayStats{Total: 3, Completed: 2, CompletionRate: 67},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTodayStats(tt.sessions, now)
			if got != tt.want {
				t.Errorf("ComputeTodayStats() = %+v, want %+v", got, tt.want)
			}
			if got.CompletionRate < 0 || got.CompletionRate > 100 {
				t.Errorf("completion rate %d outside [0,100]", got.CompletionRate)
			}
		})
	}
}

func TestNext(t *testing.T) {
	now := mustTime(t, "2024-03-01T09:00")

	cancelled := domain.Session{ID: uuid.New(), Date: "2024-01-01", Time: "10:00", Status: domain.SessionCancelled}
	future := domain.Session{ID: uuid.New(), Date: "2024-06-01", Time: "10:00", Status: domain.SessionScheduled}

	got := Next([]domain.Session{cancelled, future}, now)
	if got == nil {
		t.Fatal("Next() = nil, want the June session")
	}
	if got.ID != future.ID {
		t.Errorf("Next() = %s on %s, want %s", got.ID, got.Date, future.ID)
	}

	if got := Next([]domain.Session{cancelled}, now); got != nil {
		t.Errorf("Next() over cancelled-only input = %+v, want nil", got)
	}
}

func TestUpcomingOrderingAndExclusions(t *testing.T) {
	now := mustTime(t, "2024-03-01T09:00")

	sessions := []domain.Session{
		{ID: uuid.New(), Date: "2024-04-01", Time: "15:00", Status: domain.SessionScheduled},
		{ID: uuid.New(), Date: "2024-03-05", Time: "09:00", Status: domain.SessionScheduled},
		{ID: uuid.New(), Date: "2024-03-05", Time: "08:00", Status: domain.SessionCompleted},
		{ID: uuid.New(), Date: "2024-02-01", Time: "10:00", Status: domain.SessionScheduled}, // past
		{ID: uuid.New(), Date: "2024-05-01", Time: "10:00", Status: domain.SessionCancelled}, // cancelled
		{ID: uuid.New(), Date: "garbage", Time: "10:00", Status: domain.SessionScheduled},    // malformed
	}

	got := Upcoming(sessions, now)
	if len(got) != 3 {
		t.Fatalf("Upcoming() returned %d sessions, want 3", len(got))
	}

	wantOrder := []string{"2024-03-05T08:00", "2024-03-05T09:00", "2024-04-01T15:00"}
	for i, s := range got {
		if key := s.Date + "T" + s.Time; key != wantOrder[i] {
			t.Errorf("upcoming[%d] = %s, want %s", i, key, wantOrder[i])
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		base string
		rec  domain.Recurrence
		want []string
	}{
		{
			name: "weekly bounded window",
			base: "2024-01-01",
			rec:  domain.Recurrence{Frequency: domain.RecurWeekly, EndDate: "2024-01-22"},
			want: []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"},
		},
		{
			name: "weekly end date between steps",
			base: "2024-01-01",
			rec:  domain.Recurrence{Frequency: domain.RecurWeekly, EndDate: "2024-01-20"},
			want: []string{"2024-01-01", "2024-01-08", "2024-01-15"},
		},
		{
			name: "biweekly",
			base: "2024-01-01",
			rec:  domain.Recurrence{Frequency: domain.RecurBiweekly, EndDate: "2024-02-01"},
			want: []string{"2024-01-01", "2024-01-15", "2024-01-29"},
		},
		{
			name: "monthly",
			base: "2024-01-15",
			rec:  domain.Recurrence{Frequency: domain.RecurMonthly, EndDate: "2024-04-15"},
			want: []string{"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15"},
		},
		{
			name: "none yields base only",
			base: "2024-01-01",
			rec:  domain.Recurrence{Frequency: domain.RecurNone, EndDate: "2024-12-31"},
			want: []string{"2024-01-01"},
		},
		{
			name: "missing end date yields base only",
			base: "2024-01-01",
			rec:  domain.Recurrence{Frequency: domain.RecurWeekly},
			want: []string{"2024-01-01"},
		},
		{
			name: "end before base yields base only",
			base: "2024-06-01",
			rec:  domain.Recurrence{Frequency: domain.RecurWeekly, EndDate: "2024-01-01"},
			want: []string{"2024-06-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.base, tt.rec)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientSessionTime(t *testing.T) {
	clientID := uuid.New()
	otherID := uuid.New()

	sessions := []domain.Session{
		{ClientID: clientID, Duration: 60, Status: domain.SessionCompleted},
		{ClientID: clientID, Duration: 45, Status: domain.SessionCompleted},
		{ClientID: clientID, Duration: 30, Status: domain.SessionScheduled}, // not completed
		{ClientID: otherID, Duration: 90, Status: domain.SessionCompleted}, // other client
	}

	got := ClientSessionTime(sessions, clientID)
	want := ClientTime{Hours: 1, Minutes: 45}
	if got != want {
		t.Errorf("ClientSessionTime() = %+v, want %+v", got, want)
	}

	if got := ClientSessionTime(nil, clientID); got != (ClientTime{}) {
		t.Errorf("ClientSessionTime(nil) = %+v, want zero", got)
	}
}

func TestCompletedWithin(t *testing.T) {
	start, end, err := CustomRange("2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("CustomRange() error = %v", err)
	}

	sessions := []domain.Session{
		{Date: "2024-03-01", Status: domain.SessionCompleted},
		{Date: "2024-03-31", Status: domain.SessionCompleted},
		{Date: "2024-02-29", Status: domain.SessionCompleted}, // before window
		{Date: "2024-04-01", Status: domain.SessionCompleted}, // after window
		{Date: "2024-03-15", Status: domain.SessionScheduled}, // not completed
		{Date: "bogus", Status: domain.SessionCompleted},      // malformed, skipped
	}

	got := CompletedWithin(sessions, start, end)
	if len(got) != 2 {
		t.Fatalf("CompletedWithin() returned %d sessions, want 2", len(got))
	}
}

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{"valid", "2024-01-05", "14:30", "Jan 5, 2024 2:30 PM"},
		{"morning", "2024-12-25", "09:00", "Dec 25, 2024 9:00 AM"},
		{"bad date", "not-a-date", "14:30", InvalidDateLabel},
		{"bad time", "2024-01-05", "25:99", InvalidDateLabel},
		{"empty", "", "", InvalidDateLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTime(tt.date, tt.time); got != tt.want {
				t.Errorf("FormatDateTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
