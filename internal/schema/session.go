package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is a scheduled therapy session. Date and time are stored as the
// strings the scheduler works with ("2024-01-01", "14:30") and combined
// only for chronological comparisons.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id"),

		field.String("date").
			MaxLen(10).
			Comment("Calendar date as YYYY-MM-DD"),

		field.String("start_time").
			MaxLen(5).
			Comment("Local time of day as HH:MM"),

		field.Int("duration_minutes").
			Min(15).
			Max(180),

		field.Enum("session_type").
			Values("initial", "individual", "family", "couple", "followup", "emergency", "telehealth"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id", "date"),
		index.Fields("therapist_id", "status", "date"),
		index.Fields("client_id", "status"),
	}
}
