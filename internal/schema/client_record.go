package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ClientRecord is a therapist's client record. Clients are never hard-deleted;
// they are toggled between active and inactive.
type ClientRecord struct {
	ent.Schema
}

func (ClientRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ClientRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK → users.id (owning therapist)"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("date_of_birth").
			Optional().
			Nillable().
			MaxLen(10).
			Comment("Calendar date as YYYY-MM-DD; empty when unknown"),

		field.String("address").
			Optional().
			Nillable().
			MaxLen(500),

		field.String("emergency_contact").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("insurance_provider").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "inactive").
			Default("active"),
	}
}

func (ClientRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("therapist_id"),
		index.Fields("therapist_id", "status"),
	}
}
