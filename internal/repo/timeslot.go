// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/timeslot"
)

// TimeSlot is the model entity for the TimeSlot schema.
type TimeSlot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → psychologists.id
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Modality holds the value of the "modality" field.
	Modality timeslot.Modality `json:"modality,omitempty"`
	// IsBooked holds the value of the "is_booked" field.
	IsBooked bool `json:"is_booked,omitempty"`
	// Occupant email; set iff is_booked
	BookedBy     *string `json:"booked_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TimeSlot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case timeslot.FieldIsBooked:
			values[i] = new(sql.NullBool)
		case timeslot.FieldModality, timeslot.FieldBookedBy:
			values[i] = new(sql.NullString)
		case timeslot.FieldCreatedAt, timeslot.FieldUpdatedAt, timeslot.FieldStartTime, timeslot.FieldEndTime:
			values[i] = new(sql.NullTime)
		case timeslot.FieldID, timeslot.FieldPsychologistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TimeSlot fields.
func (_m *TimeSlot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case timeslot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case timeslot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case timeslot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case timeslot.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case timeslot.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case timeslot.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case timeslot.FieldModality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modality", values[i])
			} else if value.Valid {
				_m.Modality = timeslot.Modality(value.String)
			}
		case timeslot.FieldIsBooked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_booked", values[i])
			} else if value.Valid {
				_m.IsBooked = value.Bool
			}
		case timeslot.FieldBookedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booked_by", values[i])
			} else if value.Valid {
				_m.BookedBy = new(string)
				*_m.BookedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TimeSlot.
// This includes values selected through modifiers, order, etc.
func (_m *TimeSlot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TimeSlot.
// Note that you need to call TimeSlot.Unwrap() before calling this method if this TimeSlot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TimeSlot) Update() *TimeSlotUpdateOne {
	return NewTimeSlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TimeSlot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TimeSlot) Unwrap() *TimeSlot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TimeSlot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TimeSlot) String() string {
	var builder strings.Builder
	builder.WriteString("TimeSlot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("modality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modality))
	builder.WriteString(", ")
	builder.WriteString("is_booked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBooked))
	builder.WriteString(", ")
	if v := _m.BookedBy; v != nil {
		builder.WriteString("booked_by=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// TimeSlots is a parsable slice of TimeSlot.
type TimeSlots []*TimeSlot
