package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Streak tracks the daily play streak per learner.
type Streak struct {
	ent.Schema
}

func (Streak) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique(),
		field.Int("current_streak").
			Default(0),
		field.String("last_played_date").
			Default("").
			Comment("YYYY-MM-DD local day key"),
	}
}

func (Streak) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id").
			Unique(),
	}
}
