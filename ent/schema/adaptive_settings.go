package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptiveSettings is the per-learner configuration row. Values are
// clamped by the session package on read; the columns store whatever
// was last written.
type AdaptiveSettings struct {
	ent.Schema
}

func (AdaptiveSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique(),
		field.Int("main_rounds").
			Default(1),
		field.Bool("boss_enabled").
			Default(true),
		field.Int("boss_intensity").
			Default(3),
		field.String("hint_mode").
			Default("guided"),
		field.Int("daily_goal").
			Default(3),
	}
}

func (AdaptiveSettings) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id").
			Unique(),
	}
}
