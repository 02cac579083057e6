// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/practiq/practiq_backend/internal/repo/predicate"
	"github.com/practiq/practiq_backend/internal/repo/therapynote"
)

// TherapyNoteUpdate is the builder for updating TherapyNote entities.
type TherapyNoteUpdate struct {
	config
	hooks    []Hook
	mutation *TherapyNoteMutation
}

// Where appends a list predicates to the TherapyNoteUpdate builder.
func (_u *TherapyNoteUpdate) Where(ps ...predicate.TherapyNote) *TherapyNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapyNoteUpdate) SetTherapistID(v uuid.UUID) *TherapyNoteUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapyNoteUpdate) SetNillableTherapistID(v *uuid.UUID) *TherapyNoteUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *TherapyNoteUpdate) SetClientID(v uuid.UUID) *TherapyNoteUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *TherapyNoteUpdate) SetNillableClientID(v *uuid.UUID) *TherapyNoteUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TherapyNoteUpdate) SetSessionID(v uuid.UUID) *TherapyNoteUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TherapyNoteUpdate) SetNillableSessionID(v *uuid.UUID) *TherapyNoteUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TherapyNoteUpdate) SetContent(v string) *TherapyNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TherapyNoteUpdate) SetNillableContent(v *string) *TherapyNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the TherapyNoteMutation object of the builder.
func (_u *TherapyNoteUpdate) Mutation() *TherapyNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapyNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapyNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapyNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapyNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapyNoteUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := therapynote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "TherapyNote.content": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapyNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapynote.Table, therapynote.Columns, sqlgraph.NewFieldSpec(therapynote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapynote.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(therapynote.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(therapynote.FieldSessionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(therapynote.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapynote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapyNoteUpdateOne is the builder for updating a single TherapyNote entity.
type TherapyNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapyNoteMutation
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapyNoteUpdateOne) SetTherapistID(v uuid.UUID) *TherapyNoteUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapyNoteUpdateOne) SetNillableTherapistID(v *uuid.UUID) *TherapyNoteUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *TherapyNoteUpdateOne) SetClientID(v uuid.UUID) *TherapyNoteUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *TherapyNoteUpdateOne) SetNillableClientID(v *uuid.UUID) *TherapyNoteUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TherapyNoteUpdateOne) SetSessionID(v uuid.UUID) *TherapyNoteUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TherapyNoteUpdateOne) SetNillableSessionID(v *uuid.UUID) *TherapyNoteUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *TherapyNoteUpdateOne) SetContent(v string) *TherapyNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *TherapyNoteUpdateOne) SetNillableContent(v *string) *TherapyNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the TherapyNoteMutation object of the builder.
func (_u *TherapyNoteUpdateOne) Mutation() *TherapyNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the TherapyNoteUpdate builder.
func (_u *TherapyNoteUpdateOne) Where(ps ...predicate.TherapyNote) *TherapyNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapyNoteUpdateOne) Select(field string, fields ...string) *TherapyNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TherapyNote entity.
func (_u *TherapyNoteUpdateOne) Save(ctx context.Context) (*TherapyNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapyNoteUpdateOne) SaveX(ctx context.Context) *TherapyNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapyNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapyNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapyNoteUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := therapynote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "TherapyNote.content": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapyNoteUpdateOne) sqlSave(ctx context.Context) (_node *TherapyNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapynote.Table, therapynote.Columns, sqlgraph.NewFieldSpec(therapynote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TherapyNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapynote.FieldID)
		for _, f := range fields {
			if !therapynote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapynote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapynote.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(therapynote.FieldClientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(therapynote.FieldSessionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(therapynote.FieldContent, field.TypeString, value)
	}
	_node = &TherapyNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapynote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
