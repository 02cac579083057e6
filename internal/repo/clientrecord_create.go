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
	"github.com/practiq/practiq_backend/internal/repo/clientrecord"
)

// ClientRecordCreate is the builder for creating a ClientRecord entity.
type ClientRecordCreate struct {
	config
	mutation *ClientRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClientRecordCreate) SetCreatedAt(v time.Time) *ClientRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableCreatedAt(v *time.Time) *ClientRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClientRecordCreate) SetUpdatedAt(v time.Time) *ClientRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableUpdatedAt(v *time.Time) *ClientRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *ClientRecordCreate) SetTherapistID(v uuid.UUID) *ClientRecordCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *ClientRecordCreate) SetFirstName(v string) *ClientRecordCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *ClientRecordCreate) SetLastName(v string) *ClientRecordCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClientRecordCreate) SetEmail(v string) *ClientRecordCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableEmail(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClientRecordCreate) SetPhone(v string) *ClientRecordCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillablePhone(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *ClientRecordCreate) SetDateOfBirth(v string) *ClientRecordCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableDateOfBirth(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetDateOfBirth(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ClientRecordCreate) SetAddress(v string) *ClientRecordCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableAddress(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_c *ClientRecordCreate) SetEmergencyContact(v string) *ClientRecordCreate {
	_c.mutation.SetEmergencyContact(v)
	return _c
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableEmergencyContact(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetEmergencyContact(*v)
	}
	return _c
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_c *ClientRecordCreate) SetEmergencyPhone(v string) *ClientRecordCreate {
	_c.mutation.SetEmergencyPhone(v)
	return _c
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableEmergencyPhone(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetEmergencyPhone(*v)
	}
	return _c
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_c *ClientRecordCreate) SetInsuranceProvider(v string) *ClientRecordCreate {
	_c.mutation.SetInsuranceProvider(v)
	return _c
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableInsuranceProvider(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetInsuranceProvider(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ClientRecordCreate) SetNotes(v string) *ClientRecordCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableNotes(v *string) *ClientRecordCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClientRecordCreate) SetStatus(v clientrecord.Status) *ClientRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableStatus(v *clientrecord.Status) *ClientRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClientRecordCreate) SetID(v uuid.UUID) *ClientRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClientRecordCreate) SetNillableID(v *uuid.UUID) *ClientRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClientRecordMutation object of the builder.
func (_c *ClientRecordCreate) Mutation() *ClientRecordMutation {
	return _c.mutation
}

// Save creates the ClientRecord in the database.
func (_c *ClientRecordCreate) Save(ctx context.Context) (*ClientRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClientRecordCreate) SaveX(ctx context.Context) *ClientRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClientRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clientrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clientrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := clientrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clientrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClientRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClientRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClientRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "ClientRecord.therapist_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "ClientRecord.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := clientrecord.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "ClientRecord.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := clientrecord.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := clientrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := clientrecord.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DateOfBirth(); ok {
		if err := clientrecord.DateOfBirthValidator(v); err != nil {
			return &ValidationError{Name: "date_of_birth", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.date_of_birth": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := clientrecord.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.address": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContact(); ok {
		if err := clientrecord.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyPhone(); ok {
		if err := clientrecord.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InsuranceProvider(); ok {
		if err := clientrecord.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.insurance_provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ClientRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clientrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ClientRecordCreate) sqlSave(ctx context.Context) (*ClientRecord, error) {
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

func (_c *ClientRecordCreate) createSpec() (*ClientRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ClientRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clientrecord.Table, sqlgraph.NewFieldSpec(clientrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clientrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clientrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(clientrecord.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(clientrecord.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(clientrecord.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(clientrecord.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clientrecord.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(clientrecord.FieldDateOfBirth, field.TypeString, value)
		_node.DateOfBirth = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(clientrecord.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.EmergencyContact(); ok {
		_spec.SetField(clientrecord.FieldEmergencyContact, field.TypeString, value)
		_node.EmergencyContact = &value
	}
	if value, ok := _c.mutation.EmergencyPhone(); ok {
		_spec.SetField(clientrecord.FieldEmergencyPhone, field.TypeString, value)
		_node.EmergencyPhone = &value
	}
	if value, ok := _c.mutation.InsuranceProvider(); ok {
		_spec.SetField(clientrecord.FieldInsuranceProvider, field.TypeString, value)
		_node.InsuranceProvider = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(clientrecord.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clientrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientRecordCreate) OnConflict(opts ...sql.ConflictOption) *ClientRecordUpsertOne {
	_c.conflict = opts
	return &ClientRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientRecordCreate) OnConflictColumns(columns ...string) *ClientRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientRecordUpsertOne{
		create: _c,
	}
}

type (
	// ClientRecordUpsertOne is the builder for "upsert"-ing
	//  one ClientRecord node.
	ClientRecordUpsertOne struct {
		create *ClientRecordCreate
	}

	// ClientRecordUpsert is the "OnConflict" setter.
	ClientRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientRecordUpsert) SetUpdatedAt(v time.Time) *ClientRecordUpsert {
	u.Set(clientrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateUpdatedAt() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldUpdatedAt)
	return u
}

// SetTherapistID sets the "therapist_id" field.
func (u *ClientRecordUpsert) SetTherapistID(v uuid.UUID) *ClientRecordUpsert {
	u.Set(clientrecord.FieldTherapistID, v)
	return u
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateTherapistID() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldTherapistID)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *ClientRecordUpsert) SetFirstName(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateFirstName() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *ClientRecordUpsert) SetLastName(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateLastName() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *ClientRecordUpsert) SetEmail(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateEmail() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *ClientRecordUpsert) ClearEmail() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *ClientRecordUpsert) SetPhone(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdatePhone() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientRecordUpsert) ClearPhone() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldPhone)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ClientRecordUpsert) SetDateOfBirth(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateDateOfBirth() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldDateOfBirth)
	return u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ClientRecordUpsert) ClearDateOfBirth() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldDateOfBirth)
	return u
}

// SetAddress sets the "address" field.
func (u *ClientRecordUpsert) SetAddress(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateAddress() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *ClientRecordUpsert) ClearAddress() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldAddress)
	return u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *ClientRecordUpsert) SetEmergencyContact(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldEmergencyContact, v)
	return u
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateEmergencyContact() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldEmergencyContact)
	return u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *ClientRecordUpsert) ClearEmergencyContact() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldEmergencyContact)
	return u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *ClientRecordUpsert) SetEmergencyPhone(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldEmergencyPhone, v)
	return u
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateEmergencyPhone() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldEmergencyPhone)
	return u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *ClientRecordUpsert) ClearEmergencyPhone() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldEmergencyPhone)
	return u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ClientRecordUpsert) SetInsuranceProvider(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldInsuranceProvider, v)
	return u
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateInsuranceProvider() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldInsuranceProvider)
	return u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ClientRecordUpsert) ClearInsuranceProvider() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldInsuranceProvider)
	return u
}

// SetNotes sets the "notes" field.
func (u *ClientRecordUpsert) SetNotes(v string) *ClientRecordUpsert {
	u.Set(clientrecord.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateNotes() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ClientRecordUpsert) ClearNotes() *ClientRecordUpsert {
	u.SetNull(clientrecord.FieldNotes)
	return u
}

// SetStatus sets the "status" field.
func (u *ClientRecordUpsert) SetStatus(v clientrecord.Status) *ClientRecordUpsert {
	u.Set(clientrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRecordUpsert) UpdateStatus() *ClientRecordUpsert {
	u.SetExcluded(clientrecord.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientRecordUpsertOne) UpdateNewValues() *ClientRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clientrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clientrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClientRecordUpsertOne) Ignore() *ClientRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientRecordUpsertOne) DoNothing() *ClientRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientRecordCreate.OnConflict
// documentation for more info.
func (u *ClientRecordUpsertOne) Update(set func(*ClientRecordUpsert)) *ClientRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientRecordUpsertOne) SetUpdatedAt(v time.Time) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateUpdatedAt() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTherapistID sets the "therapist_id" field.
func (u *ClientRecordUpsertOne) SetTherapistID(v uuid.UUID) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetTherapistID(v)
	})
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateTherapistID() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateTherapistID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *ClientRecordUpsertOne) SetFirstName(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateFirstName() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *ClientRecordUpsertOne) SetLastName(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateLastName() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *ClientRecordUpsertOne) SetEmail(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateEmail() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClientRecordUpsertOne) ClearEmail() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ClientRecordUpsertOne) SetPhone(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdatePhone() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientRecordUpsertOne) ClearPhone() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearPhone()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ClientRecordUpsertOne) SetDateOfBirth(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateDateOfBirth() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ClientRecordUpsertOne) ClearDateOfBirth() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetAddress sets the "address" field.
func (u *ClientRecordUpsertOne) SetAddress(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateAddress() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ClientRecordUpsertOne) ClearAddress() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearAddress()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *ClientRecordUpsertOne) SetEmergencyContact(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateEmergencyContact() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmergencyContact()
	})
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *ClientRecordUpsertOne) ClearEmergencyContact() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmergencyContact()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *ClientRecordUpsertOne) SetEmergencyPhone(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateEmergencyPhone() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *ClientRecordUpsertOne) ClearEmergencyPhone() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ClientRecordUpsertOne) SetInsuranceProvider(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateInsuranceProvider() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ClientRecordUpsertOne) ClearInsuranceProvider() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetNotes sets the "notes" field.
func (u *ClientRecordUpsertOne) SetNotes(v string) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateNotes() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ClientRecordUpsertOne) ClearNotes() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *ClientRecordUpsertOne) SetStatus(v clientrecord.Status) *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRecordUpsertOne) UpdateStatus() *ClientRecordUpsertOne {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ClientRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClientRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClientRecordUpsertOne.ID is not supported by MySQL driver. Use ClientRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClientRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClientRecordCreateBulk is the builder for creating many ClientRecord entities in bulk.
type ClientRecordCreateBulk struct {
	config
	err      error
	builders []*ClientRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ClientRecord entities in the database.
func (_c *ClientRecordCreateBulk) Save(ctx context.Context) ([]*ClientRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClientRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClientRecordMutation)
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
func (_c *ClientRecordCreateBulk) SaveX(ctx context.Context) []*ClientRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClientRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClientRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClientRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClientRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClientRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClientRecordUpsertBulk {
	_c.conflict = opts
	return &ClientRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClientRecordCreateBulk) OnConflictColumns(columns ...string) *ClientRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClientRecordUpsertBulk{
		create: _c,
	}
}

// ClientRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ClientRecord nodes.
type ClientRecordUpsertBulk struct {
	create *ClientRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clientrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClientRecordUpsertBulk) UpdateNewValues() *ClientRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clientrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clientrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClientRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClientRecordUpsertBulk) Ignore() *ClientRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClientRecordUpsertBulk) DoNothing() *ClientRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClientRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ClientRecordUpsertBulk) Update(set func(*ClientRecordUpsert)) *ClientRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClientRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClientRecordUpsertBulk) SetUpdatedAt(v time.Time) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateUpdatedAt() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTherapistID sets the "therapist_id" field.
func (u *ClientRecordUpsertBulk) SetTherapistID(v uuid.UUID) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetTherapistID(v)
	})
}

// UpdateTherapistID sets the "therapist_id" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateTherapistID() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateTherapistID()
	})
}

// SetFirstName sets the "first_name" field.
func (u *ClientRecordUpsertBulk) SetFirstName(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateFirstName() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *ClientRecordUpsertBulk) SetLastName(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateLastName() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateLastName()
	})
}

// SetEmail sets the "email" field.
func (u *ClientRecordUpsertBulk) SetEmail(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateEmail() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *ClientRecordUpsertBulk) ClearEmail() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ClientRecordUpsertBulk) SetPhone(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdatePhone() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClientRecordUpsertBulk) ClearPhone() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearPhone()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *ClientRecordUpsertBulk) SetDateOfBirth(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateDateOfBirth() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateDateOfBirth()
	})
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (u *ClientRecordUpsertBulk) ClearDateOfBirth() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearDateOfBirth()
	})
}

// SetAddress sets the "address" field.
func (u *ClientRecordUpsertBulk) SetAddress(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateAddress() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ClientRecordUpsertBulk) ClearAddress() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearAddress()
	})
}

// SetEmergencyContact sets the "emergency_contact" field.
func (u *ClientRecordUpsertBulk) SetEmergencyContact(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmergencyContact(v)
	})
}

// UpdateEmergencyContact sets the "emergency_contact" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateEmergencyContact() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmergencyContact()
	})
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (u *ClientRecordUpsertBulk) ClearEmergencyContact() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmergencyContact()
	})
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (u *ClientRecordUpsertBulk) SetEmergencyPhone(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetEmergencyPhone(v)
	})
}

// UpdateEmergencyPhone sets the "emergency_phone" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateEmergencyPhone() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateEmergencyPhone()
	})
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (u *ClientRecordUpsertBulk) ClearEmergencyPhone() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearEmergencyPhone()
	})
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (u *ClientRecordUpsertBulk) SetInsuranceProvider(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetInsuranceProvider(v)
	})
}

// UpdateInsuranceProvider sets the "insurance_provider" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateInsuranceProvider() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateInsuranceProvider()
	})
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (u *ClientRecordUpsertBulk) ClearInsuranceProvider() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearInsuranceProvider()
	})
}

// SetNotes sets the "notes" field.
func (u *ClientRecordUpsertBulk) SetNotes(v string) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateNotes() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ClientRecordUpsertBulk) ClearNotes() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.ClearNotes()
	})
}

// SetStatus sets the "status" field.
func (u *ClientRecordUpsertBulk) SetStatus(v clientrecord.Status) *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ClientRecordUpsertBulk) UpdateStatus() *ClientRecordUpsertBulk {
	return u.Update(func(s *ClientRecordUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *ClientRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClientRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClientRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClientRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
