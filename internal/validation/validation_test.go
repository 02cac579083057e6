package validation

import (
	"testing"

	"github.com/practiq/practiq_backend/internal/domain"
)

func TestValidateClient(t *testing.T) {
	valid := ClientInput{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     "jamie@example.com",
	}

	tests := []struct {
		name      string
		mutate    func(*ClientInput)
		wantField string
	}{
		{"valid input", func(in *ClientInput) {}, ""},
		{"one-char first name", func(in *ClientInput) { in.FirstName = "J" }, "first_name"},
		{"whitespace-only last name", func(in *ClientInput) { in.LastName = "   " }, "last_name"},
		{"invalid email", func(in *ClientInput) { in.Email = "not-an-email" }, "email"},
		{"empty email allowed", func(in *ClientInput) { in.Email = "" }, ""},
		{"empty date of birth allowed", func(in *ClientInput) { in.DateOfBirth = "" }, ""},
		{"valid date of birth", func(in *ClientInput) { in.DateOfBirth = "1990-06-15" }, ""},
		{"malformed date of birth", func(in *ClientInput) { in.DateOfBirth = "15/06/1990" }, "date_of_birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			rec, errs := ValidateClient(in)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("ValidateClient() errors = %v, want none", errs)
				}
				if rec == nil {
					t.Fatal("ValidateClient() returned nil record without errors")
				}
				return
			}

			if rec != nil {
				t.Error("ValidateClient() returned a record alongside errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("ValidateClient() errors = %v, want field %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateClientNormalizesPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"us number to e164", "(202) 555-0143", "+12025550143"},
		{"already e164", "+12025550143", "+12025550143"},
		{"unparseable kept verbatim", "ext. 1234", "ext. 1234"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.phone); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidateSession(t *testing.T) {
	valid := SessionInput{
		Date:     "2024-04-01",
		Time:     "14:30",
		Duration: 60,
		Type:     "individual",
	}

	tests := []struct {
		name      string
		mutate    func(*SessionInput)
		wantField string
	}{
		{"valid input", func(in *SessionInput) {}, ""},
		{"missing date", func(in *SessionInput) { in.Date = "" }, "date"},
		{"malformed date", func(in *SessionInput) { in.Date = "04/01/2024" }, "date"},
		{"missing time", func(in *SessionInput) { in.Time = "" }, "time"},
		{"malformed time", func(in *SessionInput) { in.Time = "2pm" }, "time"},
		{"duration below minimum", func(in *SessionInput) { in.Duration = 10 }, "duration"},
		{"duration above maximum", func(in *SessionInput) { in.Duration = 200 }, "duration"},
		{"unknown type", func(in *SessionInput) { in.Type = "hypnosis" }, "type"},
		{"unknown status", func(in *SessionInput) { in.Status = "pending" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			rec, errs := ValidateSession(in)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("ValidateSession() errors = %v, want none", errs)
				}
				if rec.Status != domain.SessionScheduled {
					t.Errorf("default status = %s, want scheduled", rec.Status)
				}
				return
			}

			if rec != nil {
				t.Error("ValidateSession() returned a record alongside errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("ValidateSession() errors = %v, want field %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateSessionDurationBoundaries(t *testing.T) {
	for _, d := range []int{15, 180} {
		in := SessionInput{Date: "2024-04-01", Time: "10:00", Duration: d, Type: "individual"}
		if _, errs := ValidateSession(in); errs != nil {
			t.Errorf("duration %d rejected: %v", d, errs)
		}
	}
	for _, d := range []int{10, 200, 14, 181, 0} {
		in := SessionInput{Date: "2024-04-01", Time: "10:00", Duration: d, Type: "individual"}
		if _, errs := ValidateSession(in); errs == nil {
			t.Errorf("duration %d accepted, want rejection", d)
		}
	}
}

func TestValidateNote(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"non-empty content", "Client made progress on exposure hierarchy.", false},
		{"empty content", "", true},
		{"whitespace only", "   \n\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, errs := ValidateNote(NoteInput{Content: tt.content})
			if tt.wantErr {
				if errs == nil {
					t.Error("ValidateNote() accepted empty content")
				}
				return
			}
			if errs != nil {
				t.Fatalf("ValidateNote() errors = %v", errs)
			}
			if content == "" {
				t.Error("ValidateNote() returned empty normalized content")
			}
		})
	}
}
