// Code generated by ent, DO NOT EDIT.

package timeslot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldPsychologistID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldEndTime, v))
}

// IsBooked applies equality check predicate on the "is_booked" field. It's identical to IsBookedEQ.
func IsBooked(v bool) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldIsBooked, v))
}

// BookedBy applies equality check predicate on the "booked_by" field. It's identical to BookedByEQ.
func BookedBy(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldBookedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldUpdatedAt, v))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// PsychologistIDGT applies the GT predicate on the "psychologist_id" field.
func PsychologistIDGT(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldPsychologistID, v))
}

// PsychologistIDGTE applies the GTE predicate on the "psychologist_id" field.
func PsychologistIDGTE(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldPsychologistID, v))
}

// PsychologistIDLT applies the LT predicate on the "psychologist_id" field.
func PsychologistIDLT(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldPsychologistID, v))
}

// PsychologistIDLTE applies the LTE predicate on the "psychologist_id" field.
func PsychologistIDLTE(v uuid.UUID) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldPsychologistID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldEndTime, v))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v Modality) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v Modality) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...Modality) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...Modality) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldModality, vs...))
}

// IsBookedEQ applies the EQ predicate on the "is_booked" field.
func IsBookedEQ(v bool) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldIsBooked, v))
}

// IsBookedNEQ applies the NEQ predicate on the "is_booked" field.
func IsBookedNEQ(v bool) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldIsBooked, v))
}

// BookedByEQ applies the EQ predicate on the "booked_by" field.
func BookedByEQ(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEQ(FieldBookedBy, v))
}

// BookedByNEQ applies the NEQ predicate on the "booked_by" field.
func BookedByNEQ(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNEQ(FieldBookedBy, v))
}

// BookedByIn applies the In predicate on the "booked_by" field.
func BookedByIn(vs ...string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIn(FieldBookedBy, vs...))
}

// BookedByNotIn applies the NotIn predicate on the "booked_by" field.
func BookedByNotIn(vs ...string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotIn(FieldBookedBy, vs...))
}

// BookedByGT applies the GT predicate on the "booked_by" field.
func BookedByGT(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGT(FieldBookedBy, v))
}

// BookedByGTE applies the GTE predicate on the "booked_by" field.
func BookedByGTE(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldGTE(FieldBookedBy, v))
}

// BookedByLT applies the LT predicate on the "booked_by" field.
func BookedByLT(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLT(FieldBookedBy, v))
}

// BookedByLTE applies the LTE predicate on the "booked_by" field.
func BookedByLTE(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldLTE(FieldBookedBy, v))
}

// BookedByContains applies the Contains predicate on the "booked_by" field.
func BookedByContains(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldContains(FieldBookedBy, v))
}

// BookedByHasPrefix applies the HasPrefix predicate on the "booked_by" field.
func BookedByHasPrefix(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldHasPrefix(FieldBookedBy, v))
}

// BookedByHasSuffix applies the HasSuffix predicate on the "booked_by" field.
func BookedByHasSuffix(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldHasSuffix(FieldBookedBy, v))
}

// BookedByIsNil applies the IsNil predicate on the "booked_by" field.
func BookedByIsNil() predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldIsNull(FieldBookedBy))
}

// BookedByNotNil applies the NotNil predicate on the "booked_by" field.
func BookedByNotNil() predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldNotNull(FieldBookedBy))
}

// BookedByEqualFold applies the EqualFold predicate on the "booked_by" field.
func BookedByEqualFold(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldEqualFold(FieldBookedBy, v))
}

// BookedByContainsFold applies the ContainsFold predicate on the "booked_by" field.
func BookedByContainsFold(v string) predicate.TimeSlot {
	return predicate.TimeSlot(sql.FieldContainsFold(FieldBookedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TimeSlot) predicate.TimeSlot {
	return predicate.TimeSlot(sql.NotPredicates(p))
}
