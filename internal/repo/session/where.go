// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPsychologistID, v))
}

// TimeSlotID applies equality check predicate on the "time_slot_id" field. It's identical to TimeSlotIDEQ.
func TimeSlotID(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTimeSlotID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientName, v))
}

// PatientDni applies equality check predicate on the "patient_dni" field. It's identical to PatientDniEQ.
func PatientDni(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientDni, v))
}

// PatientEmail applies equality check predicate on the "patient_email" field. It's identical to PatientEmailEQ.
func PatientEmail(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientEmail, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSpecialty, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// PsychologistIDGT applies the GT predicate on the "psychologist_id" field.
func PsychologistIDGT(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPsychologistID, v))
}

// PsychologistIDGTE applies the GTE predicate on the "psychologist_id" field.
func PsychologistIDGTE(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPsychologistID, v))
}

// PsychologistIDLT applies the LT predicate on the "psychologist_id" field.
func PsychologistIDLT(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPsychologistID, v))
}

// PsychologistIDLTE applies the LTE predicate on the "psychologist_id" field.
func PsychologistIDLTE(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPsychologistID, v))
}

// TimeSlotIDEQ applies the EQ predicate on the "time_slot_id" field.
func TimeSlotIDEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTimeSlotID, v))
}

// TimeSlotIDNEQ applies the NEQ predicate on the "time_slot_id" field.
func TimeSlotIDNEQ(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTimeSlotID, v))
}

// TimeSlotIDIn applies the In predicate on the "time_slot_id" field.
func TimeSlotIDIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTimeSlotID, vs...))
}

// TimeSlotIDNotIn applies the NotIn predicate on the "time_slot_id" field.
func TimeSlotIDNotIn(vs ...uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTimeSlotID, vs...))
}

// TimeSlotIDGT applies the GT predicate on the "time_slot_id" field.
func TimeSlotIDGT(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTimeSlotID, v))
}

// TimeSlotIDGTE applies the GTE predicate on the "time_slot_id" field.
func TimeSlotIDGTE(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTimeSlotID, v))
}

// TimeSlotIDLT applies the LT predicate on the "time_slot_id" field.
func TimeSlotIDLT(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTimeSlotID, v))
}

// TimeSlotIDLTE applies the LTE predicate on the "time_slot_id" field.
func TimeSlotIDLTE(v uuid.UUID) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTimeSlotID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientDniEQ applies the EQ predicate on the "patient_dni" field.
func PatientDniEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientDni, v))
}

// PatientDniNEQ applies the NEQ predicate on the "patient_dni" field.
func PatientDniNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPatientDni, v))
}

// PatientDniIn applies the In predicate on the "patient_dni" field.
func PatientDniIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPatientDni, vs...))
}

// PatientDniNotIn applies the NotIn predicate on the "patient_dni" field.
func PatientDniNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPatientDni, vs...))
}

// PatientDniGT applies the GT predicate on the "patient_dni" field.
func PatientDniGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPatientDni, v))
}

// PatientDniGTE applies the GTE predicate on the "patient_dni" field.
func PatientDniGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPatientDni, v))
}

// PatientDniLT applies the LT predicate on the "patient_dni" field.
func PatientDniLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPatientDni, v))
}

// PatientDniLTE applies the LTE predicate on the "patient_dni" field.
func PatientDniLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPatientDni, v))
}

// PatientDniContains applies the Contains predicate on the "patient_dni" field.
func PatientDniContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPatientDni, v))
}

// PatientDniHasPrefix applies the HasPrefix predicate on the "patient_dni" field.
func PatientDniHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPatientDni, v))
}

// PatientDniHasSuffix applies the HasSuffix predicate on the "patient_dni" field.
func PatientDniHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPatientDni, v))
}

// PatientDniEqualFold applies the EqualFold predicate on the "patient_dni" field.
func PatientDniEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPatientDni, v))
}

// PatientDniContainsFold applies the ContainsFold predicate on the "patient_dni" field.
func PatientDniContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPatientDni, v))
}

// PatientEmailEQ applies the EQ predicate on the "patient_email" field.
func PatientEmailEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPatientEmail, v))
}

// PatientEmailNEQ applies the NEQ predicate on the "patient_email" field.
func PatientEmailNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPatientEmail, v))
}

// PatientEmailIn applies the In predicate on the "patient_email" field.
func PatientEmailIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPatientEmail, vs...))
}

// PatientEmailNotIn applies the NotIn predicate on the "patient_email" field.
func PatientEmailNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPatientEmail, vs...))
}

// PatientEmailGT applies the GT predicate on the "patient_email" field.
func PatientEmailGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPatientEmail, v))
}

// PatientEmailGTE applies the GTE predicate on the "patient_email" field.
func PatientEmailGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPatientEmail, v))
}

// PatientEmailLT applies the LT predicate on the "patient_email" field.
func PatientEmailLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPatientEmail, v))
}

// PatientEmailLTE applies the LTE predicate on the "patient_email" field.
func PatientEmailLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPatientEmail, v))
}

// PatientEmailContains applies the Contains predicate on the "patient_email" field.
func PatientEmailContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPatientEmail, v))
}

// PatientEmailHasPrefix applies the HasPrefix predicate on the "patient_email" field.
func PatientEmailHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPatientEmail, v))
}

// PatientEmailHasSuffix applies the HasSuffix predicate on the "patient_email" field.
func PatientEmailHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPatientEmail, v))
}

// PatientEmailEqualFold applies the EqualFold predicate on the "patient_email" field.
func PatientEmailEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPatientEmail, v))
}

// PatientEmailContainsFold applies the ContainsFold predicate on the "patient_email" field.
func PatientEmailContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPatientEmail, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndTime, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSpecialty, v))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v Modality) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v Modality) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...Modality) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...Modality) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldModality, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
