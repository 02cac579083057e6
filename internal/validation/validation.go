// Package validation checks raw form input for clients, sessions and
// notes before anything touches storage. Expected-invalid input never
// produces a Go error: callers get a field→message map instead.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/practiq/practiq_backend/internal/domain"
)

// FieldErrors maps a field name to a human-readable message. A nil map
// means the input is valid.
type FieldErrors map[string]string

var (
	validate  = validator.New()
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	// phone numbers without a country prefix are assumed US
	defaultPhoneRegion = "US"
)

// ClientInput is the raw client form payload.
type ClientInput struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DateOfBirth       string
	Address           string
	EmergencyContact  string
	EmergencyPhone    string
	InsuranceProvider string
	Notes             string
}

// ClientRecord is a normalized, validated client payload.
type ClientRecord struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DateOfBirth       string
	Address           string
	EmergencyContact  string
	EmergencyPhone    string
	InsuranceProvider string
	Notes             string
}

// ValidateClient checks a client form. Name fields need at least two
// characters; email and date of birth may be empty but must be
// well-formed otherwise; phone numbers are normalized to E.164 when
// parseable and kept verbatim when not.
func ValidateClient(in ClientInput) (*ClientRecord, FieldErrors) {
	errs := FieldErrors{}

	first := strings.TrimSpace(in.FirstName)
	if len([]rune(first)) < 2 {
		errs["first_name"] = "first name must be at least 2 characters"
	}

	last := strings.TrimSpace(in.LastName)
	if len([]rune(last)) < 2 {
		errs["last_name"] = "last name must be at least 2 characters"
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			errs["email"] = "invalid email address"
		}
	}

	dob := strings.TrimSpace(in.DateOfBirth)
	if dob != "" && !isoDateRe.MatchString(dob) {
		errs["date_of_birth"] = "date of birth must be YYYY-MM-DD"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ClientRecord{
		FirstName:         first,
		LastName:          last,
		Email:             email,
		Phone:             NormalizePhone(in.Phone),
		DateOfBirth:       dob,
		Address:           strings.TrimSpace(in.Address),
		EmergencyContact:  strings.TrimSpace(in.EmergencyContact),
		EmergencyPhone:    NormalizePhone(in.EmergencyPhone),
		InsuranceProvider: strings.TrimSpace(in.InsuranceProvider),
		Notes:             strings.TrimSpace(in.Notes),
	}, nil
}

// SessionInput is the raw session form payload.
type SessionInput struct {
	Date     string
	Time     string
	Duration int
	Type     string
	Status   string
	Notes    string
}

// SessionRecord is a normalized, validated session payload.
type SessionRecord struct {
	Date     string
	Time     string
	Duration int
	Type     domain.SessionType
	Status   domain.SessionStatus
	Notes    string
}

// ValidateSession checks a session form: date and time are required and
// well-formed, duration is bounded to [15,180], type and status must be
// members of their enumerations.
func ValidateSession(in SessionInput) (*SessionRecord, FieldErrors) {
	errs := FieldErrors{}

	date := strings.TrimSpace(in.Date)
	switch {
	case date == "":
		errs["date"] = "date is required"
	case !isoDateRe.MatchString(date):
		errs["date"] = "date must be YYYY-MM-DD"
	}

	tm := strings.TrimSpace(in.Time)
	switch {
	case tm == "":
		errs["time"] = "time is required"
	case !timeRe.MatchString(tm):
		errs["time"] = "time must be HH:MM"
	}

	if in.Duration < 15 || in.Duration > 180 {
		errs["duration"] = "duration must be between 15 and 180 minutes"
	}

	st := domain.SessionType(strings.TrimSpace(in.Type))
	if !st.Valid() {
		errs["type"] = "unknown session type"
	}

	status := domain.SessionStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.SessionScheduled
	}
	switch status {
	case domain.SessionScheduled, domain.SessionCompleted, domain.SessionCancelled:
	default:
		errs["status"] = "unknown session status"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &SessionRecord{
		Date:     date,
		Time:     tm,
		Duration: in.Duration,
		Type:     st,
		Status:   status,
		Notes:    strings.TrimSpace(in.Notes),
	}, nil
}

// NoteInput is the raw note form payload.
type NoteInput struct {
	Content string
}

// ValidateNote requires non-empty note content.
func ValidateNote(in NoteInput) (string, FieldErrors) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return "", FieldErrors{"content": "note content is required"}
	}
	return content, nil
}

// NormalizePhone formats a phone number as E.164 when it parses as a
// valid number and returns the trimmed input untouched otherwise.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ""
	}

	num, err := phonenumbers.Parse(phone, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
