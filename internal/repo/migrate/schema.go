// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientRecordsColumns holds the columns for the "client_records" table.
	ClientRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeString, Nullable: true, Size: 10},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "insurance_provider", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
	}
	// ClientRecordsTable holds the schema information for the "client_records" table.
	ClientRecordsTable = &schema.Table{
		Name:       "client_records",
		Columns:    ClientRecordsColumns,
		PrimaryKey: []*schema.Column{ClientRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientrecord_therapist_id",
				Unique:  false,
				Columns: []*schema.Column{ClientRecordsColumns[3]},
			},
			{
				Name:    "clientrecord_therapist_id_status",
				Unique:  false,
				Columns: []*schema.Column{ClientRecordsColumns[3], ClientRecordsColumns[14]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "session_type", Type: field.TypeEnum, Enums: []string{"initial", "individual", "family", "couple", "followup", "emergency", "telehealth"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_therapist_id_date",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[5]},
			},
			{
				Name:    "session_therapist_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[9], SessionsColumns[5]},
			},
			{
				Name:    "session_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[9]},
			},
		},
	}
	// TherapyNotesColumns holds the columns for the "therapy_notes" table.
	TherapyNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// TherapyNotesTable holds the schema information for the "therapy_notes" table.
	TherapyNotesTable = &schema.Table{
		Name:       "therapy_notes",
		Columns:    TherapyNotesColumns,
		PrimaryKey: []*schema.Column{TherapyNotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapynote_therapist_id",
				Unique:  false,
				Columns: []*schema.Column{TherapyNotesColumns[2]},
			},
			{
				Name:    "therapynote_client_id",
				Unique:  false,
				Columns: []*schema.Column{TherapyNotesColumns[3]},
			},
			{
				Name:    "therapynote_session_id",
				Unique:  false,
				Columns: []*schema.Column{TherapyNotesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "stripe_customer_id", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "subscription_status", Type: field.TypeEnum, Enums: []string{"none", "trialing", "active", "past_due", "canceled"}, Default: "none"},
		{Name: "subscription_plan", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "subscription_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientRecordsTable,
		SessionsTable,
		TherapyNotesTable,
		UsersTable,
	}
)

func init() {
}
