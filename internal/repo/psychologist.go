// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
)

// Psychologist is the model entity for the Psychologist schema.
type Psychologist struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category strings shown in the filter bar
	Specialties []string `json:"specialties,omitempty"`
	// Subset of {"online", "in_person"}
	Modalities []string `json:"modalities,omitempty"`
	// Avatar holds the value of the "avatar" field.
	Avatar string `json:"avatar,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// Years of practice
	Experience int `json:"experience,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio          string `json:"bio,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Psychologist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldSpecialties, psychologist.FieldModalities:
			values[i] = new([]byte)
		case psychologist.FieldRating:
			values[i] = new(sql.NullFloat64)
		case psychologist.FieldExperience:
			values[i] = new(sql.NullInt64)
		case psychologist.FieldName, psychologist.FieldAvatar, psychologist.FieldBio:
			values[i] = new(sql.NullString)
		case psychologist.FieldCreatedAt, psychologist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case psychologist.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Psychologist fields.
func (_m *Psychologist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologist.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case psychologist.FieldSpecialties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specialties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specialties); err != nil {
					return fmt.Errorf("unmarshal field specialties: %w", err)
				}
			}
		case psychologist.FieldModalities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modalities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Modalities); err != nil {
					return fmt.Errorf("unmarshal field modalities: %w", err)
				}
			}
		case psychologist.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		case psychologist.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case psychologist.FieldExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experience", values[i])
			} else if value.Valid {
				_m.Experience = int(value.Int64)
			}
		case psychologist.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Psychologist.
// This includes values selected through modifiers, order, etc.
func (_m *Psychologist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Psychologist.
// Note that you need to call Psychologist.Unwrap() before calling this method if this Psychologist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Psychologist) Update() *PsychologistUpdateOne {
	return NewPsychologistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Psychologist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Psychologist) Unwrap() *Psychologist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Psychologist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Psychologist) String() string {
	var builder strings.Builder
	builder.WriteString("Psychologist(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("specialties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specialties))
	builder.WriteString(", ")
	builder.WriteString("modalities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modalities))
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.Experience))
	builder.WriteString(", ")
	builder.WriteString("bio=")
	builder.WriteString(_m.Bio)
	builder.WriteByte(')')
	return builder.String()
}

// Psychologists is a parsable slice of Psychologist.
type Psychologists []*Psychologist
