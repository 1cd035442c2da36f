package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is a confirmed booking between a patient and a psychologist. The
// patient is identified by the (name, DNI, email) triple; there are no
// accounts. At most one scheduled session references a given time slot —
// the booking protocol enforces it, not the schema.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → psychologists.id"),

		field.UUID("time_slot_id", uuid.UUID{}).
			Comment("Snapshot ref to time_slots.id"),

		field.String("patient_name"),

		field.String("patient_dni"),

		field.String("patient_email").
			Comment("Stored lowercase"),

		field.Time("start_time").
			Comment("Copied from the slot at booking time"),

		field.Time("end_time"),

		field.String("specialty"),

		field.Enum("modality").
			Values("online", "in_person"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled").
			Default("scheduled"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_dni", "patient_email"),
		index.Fields("psychologist_id", "start_time"),
		index.Fields("time_slot_id"),
	}
}
