// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/practiq/practiq_backend/internal/repo/clientrecord"
	"github.com/practiq/practiq_backend/internal/repo/predicate"
)

// ClientRecordUpdate is the builder for updating ClientRecord entities.
type ClientRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ClientRecordMutation
}

// Where appends a list predicates to the ClientRecordUpdate builder.
func (_u *ClientRecordUpdate) Where(ps ...predicate.ClientRecord) *ClientRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientRecordUpdate) SetUpdatedAt(v time.Time) *ClientRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *ClientRecordUpdate) SetTherapistID(v uuid.UUID) *ClientRecordUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableTherapistID(v *uuid.UUID) *ClientRecordUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClientRecordUpdate) SetFirstName(v string) *ClientRecordUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableFirstName(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClientRecordUpdate) SetLastName(v string) *ClientRecordUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableLastName(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClientRecordUpdate) SetEmail(v string) *ClientRecordUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableEmail(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClientRecordUpdate) ClearEmail() *ClientRecordUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClientRecordUpdate) SetPhone(v string) *ClientRecordUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillablePhone(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClientRecordUpdate) ClearPhone() *ClientRecordUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ClientRecordUpdate) SetDateOfBirth(v string) *ClientRecordUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableDateOfBirth(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ClientRecordUpdate) ClearDateOfBirth() *ClientRecordUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClientRecordUpdate) SetAddress(v string) *ClientRecordUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableAddress(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClientRecordUpdate) ClearAddress() *ClientRecordUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *ClientRecordUpdate) SetEmergencyContact(v string) *ClientRecordUpdate {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableEmergencyContact(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (_u *ClientRecordUpdate) ClearEmergencyContact() *ClientRecordUpdate {
	_u.mutation.ClearEmergencyContact()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *ClientRecordUpdate) SetEmergencyPhone(v string) *ClientRecordUpdate {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableEmergencyPhone(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *ClientRecordUpdate) ClearEmergencyPhone() *ClientRecordUpdate {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *ClientRecordUpdate) SetInsuranceProvider(v string) *ClientRecordUpdate {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableInsuranceProvider(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *ClientRecordUpdate) ClearInsuranceProvider() *ClientRecordUpdate {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ClientRecordUpdate) SetNotes(v string) *ClientRecordUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableNotes(v *string) *ClientRecordUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ClientRecordUpdate) ClearNotes() *ClientRecordUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientRecordUpdate) SetStatus(v clientrecord.Status) *ClientRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientRecordUpdate) SetNillableStatus(v *clientrecord.Status) *ClientRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ClientRecordMutation object of the builder.
func (_u *ClientRecordUpdate) Mutation() *ClientRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClientRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClientRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientRecordUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := clientrecord.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := clientrecord.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clientrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clientrecord.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateOfBirth(); ok {
		if err := clientrecord.DateOfBirthValidator(v); err != nil {
			return &ValidationError{Name: "date_of_birth", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.date_of_birth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := clientrecord.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContact(); ok {
		if err := clientrecord.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := clientrecord.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := clientrecord.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientrecord.Table, clientrecord.Columns, sqlgraph.NewFieldSpec(clientrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(clientrecord.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(clientrecord.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(clientrecord.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clientrecord.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clientrecord.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clientrecord.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clientrecord.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(clientrecord.FieldDateOfBirth, field.TypeString, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(clientrecord.FieldDateOfBirth, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clientrecord.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clientrecord.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(clientrecord.FieldEmergencyContact, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactCleared() {
		_spec.ClearField(clientrecord.FieldEmergencyContact, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(clientrecord.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(clientrecord.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(clientrecord.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(clientrecord.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(clientrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(clientrecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientrecord.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClientRecordUpdateOne is the builder for updating a single ClientRecord entity.
type ClientRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClientRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClientRecordUpdateOne) SetUpdatedAt(v time.Time) *ClientRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *ClientRecordUpdateOne) SetTherapistID(v uuid.UUID) *ClientRecordUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableTherapistID(v *uuid.UUID) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *ClientRecordUpdateOne) SetFirstName(v string) *ClientRecordUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableFirstName(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *ClientRecordUpdateOne) SetLastName(v string) *ClientRecordUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableLastName(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClientRecordUpdateOne) SetEmail(v string) *ClientRecordUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableEmail(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClientRecordUpdateOne) ClearEmail() *ClientRecordUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClientRecordUpdateOne) SetPhone(v string) *ClientRecordUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillablePhone(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClientRecordUpdateOne) ClearPhone() *ClientRecordUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *ClientRecordUpdateOne) SetDateOfBirth(v string) *ClientRecordUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableDateOfBirth(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *ClientRecordUpdateOne) ClearDateOfBirth() *ClientRecordUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClientRecordUpdateOne) SetAddress(v string) *ClientRecordUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableAddress(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClientRecordUpdateOne) ClearAddress() *ClientRecordUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *ClientRecordUpdateOne) SetEmergencyContact(v string) *ClientRecordUpdateOne {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableEmergencyContact(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (_u *ClientRecordUpdateOne) ClearEmergencyContact() *ClientRecordUpdateOne {
	_u.mutation.ClearEmergencyContact()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *ClientRecordUpdateOne) SetEmergencyPhone(v string) *ClientRecordUpdateOne {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableEmergencyPhone(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *ClientRecordUpdateOne) ClearEmergencyPhone() *ClientRecordUpdateOne {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetInsuranceProvider sets the "insurance_provider" field.
func (_u *ClientRecordUpdateOne) SetInsuranceProvider(v string) *ClientRecordUpdateOne {
	_u.mutation.SetInsuranceProvider(v)
	return _u
}

// SetNillableInsuranceProvider sets the "insurance_provider" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableInsuranceProvider(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetInsuranceProvider(*v)
	}
	return _u
}

// ClearInsuranceProvider clears the value of the "insurance_provider" field.
func (_u *ClientRecordUpdateOne) ClearInsuranceProvider() *ClientRecordUpdateOne {
	_u.mutation.ClearInsuranceProvider()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ClientRecordUpdateOne) SetNotes(v string) *ClientRecordUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableNotes(v *string) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ClientRecordUpdateOne) ClearNotes() *ClientRecordUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClientRecordUpdateOne) SetStatus(v clientrecord.Status) *ClientRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClientRecordUpdateOne) SetNillableStatus(v *clientrecord.Status) *ClientRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ClientRecordMutation object of the builder.
func (_u *ClientRecordUpdateOne) Mutation() *ClientRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClientRecordUpdate builder.
func (_u *ClientRecordUpdateOne) Where(ps ...predicate.ClientRecord) *ClientRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClientRecordUpdateOne) Select(field string, fields ...string) *ClientRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClientRecord entity.
func (_u *ClientRecordUpdateOne) Save(ctx context.Context) (*ClientRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClientRecordUpdateOne) SaveX(ctx context.Context) *ClientRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClientRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClientRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClientRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clientrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClientRecordUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := clientrecord.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := clientrecord.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := clientrecord.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clientrecord.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateOfBirth(); ok {
		if err := clientrecord.DateOfBirthValidator(v); err != nil {
			return &ValidationError{Name: "date_of_birth", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.date_of_birth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := clientrecord.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.address": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContact(); ok {
		if err := clientrecord.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := clientrecord.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.emergency_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsuranceProvider(); ok {
		if err := clientrecord.InsuranceProviderValidator(v); err != nil {
			return &ValidationError{Name: "insurance_provider", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.insurance_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clientrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ClientRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClientRecordUpdateOne) sqlSave(ctx context.Context) (_node *ClientRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clientrecord.Table, clientrecord.Columns, sqlgraph.NewFieldSpec(clientrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClientRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clientrecord.FieldID)
		for _, f := range fields {
			if !clientrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clientrecord.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clientrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(clientrecord.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(clientrecord.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(clientrecord.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clientrecord.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clientrecord.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clientrecord.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clientrecord.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(clientrecord.FieldDateOfBirth, field.TypeString, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(clientrecord.FieldDateOfBirth, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clientrecord.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clientrecord.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(clientrecord.FieldEmergencyContact, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactCleared() {
		_spec.ClearField(clientrecord.FieldEmergencyContact, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(clientrecord.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(clientrecord.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.InsuranceProvider(); ok {
		_spec.SetField(clientrecord.FieldInsuranceProvider, field.TypeString, value)
	}
	if _u.mutation.InsuranceProviderCleared() {
		_spec.ClearField(clientrecord.FieldInsuranceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(clientrecord.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(clientrecord.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clientrecord.FieldStatus, field.TypeEnum, value)
	}
	_node = &ClientRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clientrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
