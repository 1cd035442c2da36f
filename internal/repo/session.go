// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → psychologists.id
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// Snapshot ref to time_slots.id
	TimeSlotID uuid.UUID `json:"time_slot_id,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// PatientDni holds the value of the "patient_dni" field.
	PatientDni string `json:"patient_dni,omitempty"`
	// Stored lowercase
	PatientEmail string `json:"patient_email,omitempty"`
	// Copied from the slot at booking time
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// Specialty holds the value of the "specialty" field.
	Specialty string `json:"specialty,omitempty"`
	// Modality holds the value of the "modality" field.
	Modality session.Modality `json:"modality,omitempty"`
	// Status holds the value of the "status" field.
	Status       session.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldPatientName, session.FieldPatientDni, session.FieldPatientEmail, session.FieldSpecialty, session.FieldModality, session.FieldStatus:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldStartTime, session.FieldEndTime:
			values[i] = new(sql.NullTime)
		case session.FieldID, session.FieldPsychologistID, session.FieldTimeSlotID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case session.FieldTimeSlotID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field time_slot_id", values[i])
			} else if value != nil {
				_m.TimeSlotID = *value
			}
		case session.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case session.FieldPatientDni:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_dni", values[i])
			} else if value.Valid {
				_m.PatientDni = value.String
			}
		case session.FieldPatientEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_email", values[i])
			} else if value.Valid {
				_m.PatientEmail = value.String
			}
		case session.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case session.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case session.FieldSpecialty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialty", values[i])
			} else if value.Valid {
				_m.Specialty = value.String
			}
		case session.FieldModality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modality", values[i])
			} else if value.Valid {
				_m.Modality = session.Modality(value.String)
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("time_slot_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSlotID))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("patient_dni=")
	builder.WriteString(_m.PatientDni)
	builder.WriteString(", ")
	builder.WriteString("patient_email=")
	builder.WriteString(_m.PatientEmail)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("specialty=")
	builder.WriteString(_m.Specialty)
	builder.WriteString(", ")
	builder.WriteString("modality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modality))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
