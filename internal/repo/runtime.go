// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/practiq/practiq_backend/internal/repo/clientrecord"
	"github.com/practiq/practiq_backend/internal/repo/session"
	"github.com/practiq/practiq_backend/internal/repo/therapynote"
	"github.com/practiq/practiq_backend/internal/repo/user"
	"github.com/practiq/practiq_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clientrecordMixin := schema.ClientRecord{}.Mixin()
	clientrecordMixinFields0 := clientrecordMixin[0].Fields()
	_ = clientrecordMixinFields0
	clientrecordMixinFields1 := clientrecordMixin[1].Fields()
	_ = clientrecordMixinFields1
	clientrecordFields := schema.ClientRecord{}.Fields()
	_ = clientrecordFields
	// clientrecordDescCreatedAt is the schema descriptor for created_at field.
	clientrecordDescCreatedAt := clientrecordMixinFields1[0].Descriptor()
	// clientrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientrecord.DefaultCreatedAt = clientrecordDescCreatedAt.Default.(func() time.Time)
	// clientrecordDescUpdatedAt is the schema descriptor for updated_at field.
	clientrecordDescUpdatedAt := clientrecordMixinFields1[1].Descriptor()
	// clientrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientrecord.DefaultUpdatedAt = clientrecordDescUpdatedAt.Default.(func() time.Time)
	// clientrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientrecord.UpdateDefaultUpdatedAt = clientrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientrecordDescFirstName is the schema descriptor for first_name field.
	clientrecordDescFirstName := clientrecordFields[1].Descriptor()
	// clientrecord.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	clientrecord.FirstNameValidator = clientrecordDescFirstName.Validators[0].(func(string) error)
	// clientrecordDescLastName is the schema descriptor for last_name field.
	clientrecordDescLastName := clientrecordFields[2].Descriptor()
	// clientrecord.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	clientrecord.LastNameValidator = clientrecordDescLastName.Validators[0].(func(string) error)
	// clientrecordDescEmail is the schema descriptor for email field.
	clientrecordDescEmail := clientrecordFields[3].Descriptor()
	// clientrecord.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clientrecord.EmailValidator = clientrecordDescEmail.Validators[0].(func(string) error)
	// clientrecordDescPhone is the schema descriptor for phone field.
	clientrecordDescPhone := clientrecordFields[4].Descriptor()
	// clientrecord.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clientrecord.PhoneValidator = clientrecordDescPhone.Validators[0].(func(string) error)
	// clientrecordDescDateOfBirth is the schema descriptor for date_of_birth field.
	clientrecordDescDateOfBirth := clientrecordFields[5].Descriptor()
	// clientrecord.DateOfBirthValidator is a validator for the "date_of_birth" field. It is called by the builders before save.
	clientrecord.DateOfBirthValidator = clientrecordDescDateOfBirth.Validators[0].(func(string) error)
	// clientrecordDescAddress is the schema descriptor for address field.
	clientrecordDescAddress := clientrecordFields[6].Descriptor()
	// clientrecord.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	clientrecord.AddressValidator = clientrecordDescAddress.Validators[0].(func(string) error)
	// clientrecordDescEmergencyContact is the schema descriptor for emergency_contact field.
	clientrecordDescEmergencyContact := clientrecordFields[7].Descriptor()
	// clientrecord.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	clientrecord.EmergencyContactValidator = clientrecordDescEmergencyContact.Validators[0].(func(string) error)
	// clientrecordDescEmergencyPhone is the schema descriptor for emergency_phone field.
	clientrecordDescEmergencyPhone := clientrecordFields[8].Descriptor()
	// clientrecord.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	clientrecord.EmergencyPhoneValidator = clientrecordDescEmergencyPhone.Validators[0].(func(string) error)
	// clientrecordDescInsuranceProvider is the schema descriptor for insurance_provider field.
	clientrecordDescInsuranceProvider := clientrecordFields[9].Descriptor()
	// clientrecord.InsuranceProviderValidator is a validator for the "insurance_provider" field. It is called by the builders before save.
	clientrecord.InsuranceProviderValidator = clientrecordDescInsuranceProvider.Validators[0].(func(string) error)
	// clientrecordDescID is the schema descriptor for id field.
	clientrecordDescID := clientrecordMixinFields0[0].Descriptor()
	// clientrecord.DefaultID holds the default value on creation for the id field.
	clientrecord.DefaultID = clientrecordDescID.Default.(func() uuid.UUID)
	sessionMixin := schema.Session{}.Mixin()
	sessionMixinFields0 := sessionMixin[0].Fields()
	_ = sessionMixinFields0
	sessionMixinFields1 := sessionMixin[1].Fields()
	_ = sessionMixinFields1
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionMixinFields1[0].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionMixinFields1[1].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescDate is the schema descriptor for date field.
	sessionDescDate := sessionFields[2].Descriptor()
	// session.DateValidator is a validator for the "date" field. It is called by the builders before save.
	session.DateValidator = sessionDescDate.Validators[0].(func(string) error)
	// sessionDescStartTime is the schema descriptor for start_time field.
	sessionDescStartTime := sessionFields[3].Descriptor()
	// session.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	session.StartTimeValidator = sessionDescStartTime.Validators[0].(func(string) error)
	// sessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	sessionDescDurationMinutes := sessionFields[4].Descriptor()
	// session.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	session.DurationMinutesValidator = func() func(int) error {
		validators := sessionDescDurationMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(duration_minutes int) error {
			for _, fn := range fns {
				if err := fn(duration_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	therapynoteMixin := schema.TherapyNote{}.Mixin()
	therapynoteMixinFields0 := therapynoteMixin[0].Fields()
	_ = therapynoteMixinFields0
	therapynoteMixinFields1 := therapynoteMixin[1].Fields()
	_ = therapynoteMixinFields1
	therapynoteFields := schema.TherapyNote{}.Fields()
	_ = therapynoteFields
	// therapynoteDescCreatedAt is the schema descriptor for created_at field.
	therapynoteDescCreatedAt := therapynoteMixinFields1[0].Descriptor()
	// therapynote.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapynote.DefaultCreatedAt = therapynoteDescCreatedAt.Default.(func() time.Time)
	// therapynoteDescContent is the schema descriptor for content field.
	therapynoteDescContent := therapynoteFields[3].Descriptor()
	// therapynote.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	therapynote.ContentValidator = therapynoteDescContent.Validators[0].(func(string) error)
	// therapynoteDescID is the schema descriptor for id field.
	therapynoteDescID := therapynoteMixinFields0[0].Descriptor()
	// therapynote.DefaultID holds the default value on creation for the id field.
	therapynote.DefaultID = therapynoteDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[0].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescStripeCustomerID is the schema descriptor for stripe_customer_id field.
	userDescStripeCustomerID := userFields[4].Descriptor()
	// user.StripeCustomerIDValidator is a validator for the "stripe_customer_id" field. It is called by the builders before save.
	user.StripeCustomerIDValidator = userDescStripeCustomerID.Validators[0].(func(string) error)
	// userDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	userDescStripeSubscriptionID := userFields[5].Descriptor()
	// user.StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	user.StripeSubscriptionIDValidator = userDescStripeSubscriptionID.Validators[0].(func(string) error)
	// userDescSubscriptionPlan is the schema descriptor for subscription_plan field.
	userDescSubscriptionPlan := userFields[7].Descriptor()
	// user.SubscriptionPlanValidator is a validator for the "subscription_plan" field. It is called by the builders before save.
	user.SubscriptionPlanValidator = userDescSubscriptionPlan.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[10].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
