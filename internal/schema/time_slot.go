package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimeSlot represents a bookable time block for a psychologist. Slots are
// provisioned in bulk by the seeder and only ever mutated by the booking
// protocol; historical slots are never deleted.
type TimeSlot struct {
	ent.Schema
}

func (TimeSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TimeSlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → psychologists.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("modality").
			Values("online", "in_person"),

		field.Bool("is_booked").
			Default(false),

		field.String("booked_by").
			Optional().
			Nillable().
			Comment("Occupant email; set iff is_booked"),
	}
}

func (TimeSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("psychologist_id", "start_time"),
		index.Fields("psychologist_id", "is_booked", "start_time"),
	}
}
