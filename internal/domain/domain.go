// Package domain holds the plain record types shared by the validation,
// analytics and store layers. They mirror the persisted rows without
// pulling in the generated data access code.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type SessionType string

const (
	TypeInitial    SessionType = "initial"
	TypeIndividual SessionType = "individual"
	TypeFamily     SessionType = "family"
	TypeCouple     SessionType = "couple"
	TypeFollowup   SessionType = "followup"
	TypeEmergency  SessionType = "emergency"
	TypeTelehealth SessionType = "telehealth"
)

// SessionTypes lists every valid session type.
var SessionTypes = []SessionType{
	TypeInitial,
	TypeIndividual,
	TypeFamily,
	TypeCouple,
	TypeFollowup,
	TypeEmergency,
	TypeTelehealth,
}

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	for _, known := range SessionTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

type RecurrenceFrequency string

const (
	RecurNone     RecurrenceFrequency = "none"
	RecurWeekly   RecurrenceFrequency = "weekly"
	RecurBiweekly RecurrenceFrequency = "biweekly"
	RecurMonthly  RecurrenceFrequency = "monthly"
)

// Recurrence is a creation-time-only directive. It controls how many
// session rows are produced; it is not a persisted series link.
type Recurrence struct {
	Frequency RecurrenceFrequency
	EndDate   string // YYYY-MM-DD, empty means no recurrence window
}

// Client is a therapist's client record.
type Client struct {
	ID                uuid.UUID    `json:"id"`
	TherapistID       uuid.UUID    `json:"therapist_id"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	Email             string       `json:"email,omitempty"`
	Phone             string       `json:"phone,omitempty"`
	DateOfBirth       string       `json:"date_of_birth,omitempty"` // YYYY-MM-DD or empty
	Address           string       `json:"address,omitempty"`
	EmergencyContact  string       `json:"emergency_contact,omitempty"`
	EmergencyPhone    string       `json:"emergency_phone,omitempty"`
	InsuranceProvider string       `json:"insurance_provider,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	Status            ClientStatus `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}

// FullName returns "First Last" for display.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Session is a scheduled therapy session. Date and Time are kept as the
// strings they were entered as and combined only for comparisons.
type Session struct {
	ID          uuid.UUID     `json:"id"`
	TherapistID uuid.UUID     `json:"therapist_id"`
	ClientID    uuid.UUID     `json:"client_id"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Time        string        `json:"time"` // HH:MM
	Duration    int           `json:"duration"` // minutes
	Type        SessionType   `json:"type"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Note is an immutable session documentation record.
type Note struct {
	ID          uuid.UUID `json:"id"`
	TherapistID uuid.UUID `json:"therapist_id"`
	ClientID    uuid.UUID `json:"client_id"`
	SessionID   uuid.UUID `json:"session_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
