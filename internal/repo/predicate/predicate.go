// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClientRecord is the predicate function for clientrecord builders.
type ClientRecord func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// TherapyNote is the predicate function for therapynote builders.
type TherapyNote func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
