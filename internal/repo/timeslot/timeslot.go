// Code generated by ent, DO NOT EDIT.

package timeslot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the timeslot type in the database.
	Label = "time_slot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPsychologistID holds the string denoting the psychologist_id field in the database.
	FieldPsychologistID = "psychologist_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldModality holds the string denoting the modality field in the database.
	FieldModality = "modality"
	// FieldIsBooked holds the string denoting the is_booked field in the database.
	FieldIsBooked = "is_booked"
	// FieldBookedBy holds the string denoting the booked_by field in the database.
	FieldBookedBy = "booked_by"
	// Table holds the table name of the timeslot in the database.
	Table = "time_slots"
)

// Columns holds all SQL columns for timeslot fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPsychologistID,
	FieldStartTime,
	FieldEndTime,
	FieldModality,
	FieldIsBooked,
	FieldBookedBy,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultIsBooked holds the default value on creation for the "is_booked" field.
	DefaultIsBooked bool
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
		return fmt.Errorf("timeslot: invalid enum value for modality field: %q", m)
	}
}

// OrderOption defines the ordering options for the TimeSlot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPsychologistID orders the results by the psychologist_id field.
func ByPsychologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPsychologistID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByModality orders the results by the modality field.
func ByModality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModality, opts...).ToFunc()
}

// ByIsBooked orders the results by the is_booked field.
func ByIsBooked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBooked, opts...).ToFunc()
}

// ByBookedBy orders the results by the booked_by field.
func ByBookedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookedBy, opts...).ToFunc()
}
