// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
	"github.com/turnos-app/turnos_backend/internal/repo/timeslot"
	"github.com/turnos-app/turnos_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	psychologistMixin := schema.Psychologist{}.Mixin()
	psychologistMixinFields0 := psychologistMixin[0].Fields()
	_ = psychologistMixinFields0
	psychologistMixinFields1 := psychologistMixin[1].Fields()
	_ = psychologistMixinFields1
	psychologistFields := schema.Psychologist{}.Fields()
	_ = psychologistFields
	// psychologistDescCreatedAt is the schema descriptor for created_at field.
	psychologistDescCreatedAt := psychologistMixinFields1[0].Descriptor()
	// psychologist.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologist.DefaultCreatedAt = psychologistDescCreatedAt.Default.(func() time.Time)
	// psychologistDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistDescUpdatedAt := psychologistMixinFields1[1].Descriptor()
	// psychologist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologist.DefaultUpdatedAt = psychologistDescUpdatedAt.Default.(func() time.Time)
	// psychologist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologist.UpdateDefaultUpdatedAt = psychologistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistDescAvatar is the schema descriptor for avatar field.
	psychologistDescAvatar := psychologistFields[3].Descriptor()
	// psychologist.DefaultAvatar holds the default value on creation for the avatar field.
	psychologist.DefaultAvatar = psychologistDescAvatar.Default.(string)
	// psychologistDescRating is the schema descriptor for rating field.
	psychologistDescRating := psychologistFields[4].Descriptor()
	// psychologist.DefaultRating holds the default value on creation for the rating field.
	psychologist.DefaultRating = psychologistDescRating.Default.(float64)
	// psychologistDescExperience is the schema descriptor for experience field.
	psychologistDescExperience := psychologistFields[5].Descriptor()
	// psychologist.DefaultExperience holds the default value on creation for the experience field.
	psychologist.DefaultExperience = psychologistDescExperience.Default.(int)
	// psychologistDescBio is the schema descriptor for bio field.
	psychologistDescBio := psychologistFields[6].Descriptor()
	// psychologist.DefaultBio holds the default value on creation for the bio field.
	psychologist.DefaultBio = psychologistDescBio.Default.(string)
	// psychologistDescID is the schema descriptor for id field.
	psychologistDescID := psychologistMixinFields0[0].Descriptor()
	// psychologist.DefaultID holds the default value on creation for the id field.
	psychologist.DefaultID = psychologistDescID.Default.(func() uuid.UUID)
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
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionMixinFields0[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	timeslotMixin := schema.TimeSlot{}.Mixin()
	timeslotMixinFields0 := timeslotMixin[0].Fields()
	_ = timeslotMixinFields0
	timeslotMixinFields1 := timeslotMixin[1].Fields()
	_ = timeslotMixinFields1
	timeslotFields := schema.TimeSlot{}.Fields()
	_ = timeslotFields
	// timeslotDescCreatedAt is the schema descriptor for created_at field.
	timeslotDescCreatedAt := timeslotMixinFields1[0].Descriptor()
	// timeslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	timeslot.DefaultCreatedAt = timeslotDescCreatedAt.Default.(func() time.Time)
	// timeslotDescUpdatedAt is the schema descriptor for updated_at field.
	timeslotDescUpdatedAt := timeslotMixinFields1[1].Descriptor()
	// timeslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timeslot.DefaultUpdatedAt = timeslotDescUpdatedAt.Default.(func() time.Time)
	// timeslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timeslot.UpdateDefaultUpdatedAt = timeslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timeslotDescIsBooked is the schema descriptor for is_booked field.
	timeslotDescIsBooked := timeslotFields[4].Descriptor()
	// timeslot.DefaultIsBooked holds the default value on creation for the is_booked field.
	timeslot.DefaultIsBooked = timeslotDescIsBooked.Default.(bool)
	// timeslotDescID is the schema descriptor for id field.
	timeslotDescID := timeslotMixinFields0[0].Descriptor()
	// timeslot.DefaultID holds the default value on creation for the id field.
	timeslot.DefaultID = timeslotDescID.Default.(func() uuid.UUID)
}
