// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPsychologistID holds the string denoting the psychologist_id field in the database.
	FieldPsychologistID = "psychologist_id"
	// FieldTimeSlotID holds the string denoting the time_slot_id field in the database.
	FieldTimeSlotID = "time_slot_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientDni holds the string denoting the patient_dni field in the database.
	FieldPatientDni = "patient_dni"
	// FieldPatientEmail holds the string denoting the patient_email field in the database.
	FieldPatientEmail = "patient_email"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldSpecialty holds the string denoting the specialty field in the database.
	FieldSpecialty = "specialty"
	// FieldModality holds the string denoting the modality field in the database.
	FieldModality = "modality"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPsychologistID,
	FieldTimeSlotID,
	FieldPatientName,
	FieldPatientDni,
	FieldPatientEmail,
	FieldStartTime,
	FieldEndTime,
	FieldSpecialty,
	FieldModality,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Modality defines the type for the "modality" enum field.
type Modality string

// Modality values.
const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in_person"
)

func (m Modality) String() string {
	return string(m)
}

// ModalityValidator is a validator for the "modality" field enum values. It is called by the builders before save.
func ModalityValidator(m Modality) error {
	switch m {
	case ModalityOnline, ModalityInPerson:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for modality field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusScheduled is the default value of the Status enum.
const DefaultStatus = StatusScheduled

// Status values.
const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPsychologistID orders the results by the psychologist_id field.
func ByPsychologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPsychologistID, opts...).ToFunc()
}

// ByTimeSlotID orders the results by the time_slot_id field.
func ByTimeSlotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSlotID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientDni orders the results by the patient_dni field.
func ByPatientDni(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientDni, opts...).ToFunc()
}

// ByPatientEmail orders the results by the patient_email field.
func ByPatientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientEmail, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// BySpecialty orders the results by the specialty field.
func BySpecialty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialty, opts...).ToFunc()
}

// ByModality orders the results by the modality field.
func ByModality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModality, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
