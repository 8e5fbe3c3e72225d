package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Learner is one local profile. The trainer is multi-profile on a
// single machine; every other table keys off the learner id.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("age_band").
			Default("adult").
			Comment("4-6, 7-9, 10-13, 14-18, or adult"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
