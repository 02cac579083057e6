package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TherapyNote is a practitioner's session documentation. Notes are
// append-only: there is no update path once written.
type TherapyNote struct {
	ent.Schema
}

func (TherapyNote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TherapyNote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → clients.id (kept alongside session_id for query convenience)"),

		field.UUID("session_id", uuid.UUID{}).
			Comment("FK → sessions.id"),

		field.Text("content").
			NotEmpty(),
	}
}

func (TherapyNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id"),
		index.Fields("client_id"),
		index.Fields("session_id"),
	}
}
