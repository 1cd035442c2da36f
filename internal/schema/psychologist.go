package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Psychologist is a provider profile. Read-mostly: created by the seeder,
// never touched by the booking protocol.
type Psychologist struct {
	ent.Schema
}

func (Psychologist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Psychologist) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),

		field.JSON("specialties", []string{}).
			Comment("Category strings shown in the filter bar"),

		field.JSON("modalities", []string{}).
			Comment(`Subset of {"online", "in_person"}`),

		field.String("avatar").
			Default(""),

		field.Float("rating").
			Default(0),

		field.Int("experience").
			Default(0).
			Comment("Years of practice"),

		field.Text("bio").
			Default(""),
	}
}
