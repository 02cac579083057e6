package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a therapist account. Every client, session and note in the
// system is owned by exactly one user.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			MaxLen(200),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// billing linkage
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		field.String("stripe_subscription_id").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("subscription_status").
			Values("none", "trialing", "active", "past_due", "canceled").
			Default("none"),

		field.String("subscription_plan").
			Optional().
			Nillable().
			MaxLen(100),

		field.Time("subscription_ends_at").
			Optional().
			Nillable(),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
