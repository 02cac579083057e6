// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/practiq/practiq_backend/internal/repo/therapynote"
)

// TherapyNoteCreate is the builder for creating a TherapyNote entity.
type TherapyNoteCreate struct {
	config
	mutation *TherapyNoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapyNoteCreate) SetCreatedAt(v time.Time) *TherapyNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapyNoteCreate) SetNillableCreatedAt(v *time.Time) *TherapyNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *TherapyNoteCreate) SetTherapistID(v uuid.UUID) *TherapyNoteCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *TherapyNoteCreate) SetClientID(v uuid.UUID) *TherapyNoteCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TherapyNoteCreate) SetSessionID(v uuid.UUID) *TherapyNoteCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *TherapyNoteCreate) SetContent(v string) *TherapyNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TherapyNoteCreate) SetID(v uuid.UUID) *TherapyNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TherapyNoteCreate) SetNillableID(v *uuid.UUID) *TherapyNoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TherapyNoteMutation object of the builder.
func (_c *TherapyNoteCreate) Mutation() *TherapyNoteMutation {
	return _c.mutation
}

// Save creates the TherapyNote in the database.
func (_c *TherapyNoteCreate) Save(ctx context.Context) (*TherapyNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapyNoteCreate) SaveX(ctx context.Context) *TherapyNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapyNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapyNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapyNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapynote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := therapynote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapyNoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TherapyNote.created_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "TherapyNote.therapist_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "TherapyNote.client_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`repo: missing required field "TherapyNote.session_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "TherapyNote.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := therapynote.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "TherapyNote.content": %w`, err)}
		}
	}
	return nil
}

func (_c *TherapyNoteCreate) sqlSave(ctx context.Context) (*TherapyNote, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TherapyNoteCreate) createSpec() (*TherapyNote, *sqlgraph.CreateSpec) {
	var (
		_node = &TherapyNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapynote.Table, sqlgraph.NewFieldSpec(therapynote.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapynote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(therapynote.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(therapynote.FieldClientID, field.TypeUUID, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(therapynote.FieldSessionID, field.TypeUUID, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(therapynote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TherapyNote.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TherapyNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TherapyNoteCreate) OnConflict(opts ...sql.ConflictOption) *TherapyNoteUpsertOne {
	_c.conflict = opts
	return &TherapyNoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TherapyNoteCreate) OnConflictColumns(columns ...string) *TherapyNoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TherapyNoteUpsertOne{
		create: _c,
	}
}

type (
	// TherapyNoteUpsertOne is the builder for "upsert"-ing
	//  one TherapyNote node.
	TherapyNoteUpsertOne struct {
		create *TherapyNoteCreate
	}

	// TherapyNoteUpsert is the "OnConflict" setter.
	TherapyNoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetTherapistID sets the "therapist_id" field.
func (u *TherapyNoteUpsert) SetTherapistID(v uuid.UUID) *TherapyNoteUpsert {
	u.Set(therapynote.FieldTherapistID, v)
	return u
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *TherapyNoteUpsert) UpdateTherapistID() *TherapyNoteUpsert {
	u.SetExcluded(therapynote.FieldTherapistID)
	return u
}

// SetClientID sets the "client_id" field.
func (u *TherapyNoteUpsert) SetClientID(v uuid.UUID) *TherapyNoteUpsert {
	u.Set(therapynote.FieldClientID, v)
	return u
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *TherapyNoteUpsert) UpdateClientID() *TherapyNoteUpsert {
	u.SetExcluded(therapynote.FieldClientID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TherapyNoteUpsert) SetSessionID(v uuid.UUID) *TherapyNoteUpsert {
	u.Set(therapynote.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TherapyNoteUpsert) UpdateSessionID() *TherapyNoteUpsert {
	u.SetExcluded(therapynote.FieldSessionID)
	return u
}

// SetContent sets the "content" field.
func (u *TherapyNoteUpsert) SetContent(v string) *TherapyNoteUpsert {
	u.Set(therapynote.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TherapyNoteUpsert) UpdateContent() *TherapyNoteUpsert {
	u.SetExcluded(therapynote.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(therapynote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TherapyNoteUpsertOne) UpdateNewValues() *TherapyNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(therapynote.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(therapynote.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TherapyNoteUpsertOne) Ignore() *TherapyNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TherapyNoteUpsertOne) DoNothing() *TherapyNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TherapyNoteCreate.OnConflict
// documentation for more info.
func (u *TherapyNoteUpsertOne) Update(set func(*TherapyNoteUpsert)) *TherapyNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TherapyNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetTherapistID sets the "therapist_id" field.
func (u *TherapyNoteUpsertOne) SetTherapistID(v uuid.UUID) *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetTherapistID(v)
	})
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertOne) UpdateTherapistID() *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateTherapistID()
	})
}

// SetClientID sets the "client_id" field.
func (u *TherapyNoteUpsertOne) SetClientID(v uuid.UUID) *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertOne) UpdateClientID() *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateClientID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TherapyNoteUpsertOne) SetSessionID(v uuid.UUID) *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertOne) UpdateSessionID() *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateSessionID()
	})
}

// SetContent sets the "content" field.
func (u *TherapyNoteUpsertOne) SetContent(v string) *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TherapyNoteUpsertOne) UpdateContent() *TherapyNoteUpsertOne {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *TherapyNoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TherapyNoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TherapyNoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TherapyNoteUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TherapyNoteUpsertOne.ID is not supported by MySQL driver. Use TherapyNoteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TherapyNoteUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TherapyNoteCreateBulk is the builder for creating many TherapyNote entities in bulk.
type TherapyNoteCreateBulk struct {
	config
	err      error
	builders []*TherapyNoteCreate
	conflict []sql.ConflictOption
}

// Save creates the TherapyNote entities in the database.
func (_c *TherapyNoteCreateBulk) Save(ctx context.Context) ([]*TherapyNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TherapyNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapyNoteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TherapyNoteCreateBulk) SaveX(ctx context.Context) []*TherapyNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapyNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapyNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TherapyNote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TherapyNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TherapyNoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *TherapyNoteUpsertBulk {
	_c.conflict = opts
	return &TherapyNoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TherapyNoteCreateBulk) OnConflictColumns(columns ...string) *TherapyNoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TherapyNoteUpsertBulk{
		create: _c,
	}
}

// TherapyNoteUpsertBulk is the builder for "upsert"-ing
// a bulk of TherapyNote nodes.
type TherapyNoteUpsertBulk struct {
	create *TherapyNoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(therapynote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TherapyNoteUpsertBulk) UpdateNewValues() *TherapyNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(therapynote.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(therapynote.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TherapyNote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TherapyNoteUpsertBulk) Ignore() *TherapyNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TherapyNoteUpsertBulk) DoNothing() *TherapyNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TherapyNoteCreateBulk.OnConflict
// documentation for more info.
func (u *TherapyNoteUpsertBulk) Update(set func(*TherapyNoteUpsert)) *TherapyNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TherapyNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetTherapistID sets the "therapist_id" field.
func (u *TherapyNoteUpsertBulk) SetTherapistID(v uuid.UUID) *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetTherapistID(v)
	})
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertBulk) UpdateTherapistID() *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateTherapistID()
	})
}

// SetClientID sets the "client_id" field.
func (u *TherapyNoteUpsertBulk) SetClientID(v uuid.UUID) *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetClientID(v)
	})
}

// UpdateClientID sets the "client_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertBulk) UpdateClientID() *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateClientID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TherapyNoteUpsertBulk) SetSessionID(v uuid.UUID) *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TherapyNoteUpsertBulk) UpdateSessionID() *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateSessionID()
	})
}

// SetContent sets the "content" field.
func (u *TherapyNoteUpsertBulk) SetContent(v string) *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *TherapyNoteUpsertBulk) UpdateContent() *TherapyNoteUpsertBulk {
	return u.Update(func(s *TherapyNoteUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *TherapyNoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TherapyNoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TherapyNoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TherapyNoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
