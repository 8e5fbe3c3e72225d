package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records sitting lifecycle transitions: start, completion,
// restart, abandonment.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("UUID for the sitting"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, restarted, or abandoned"),
		field.Int("rounds").
			Default(0),
		field.Int("correct").
			Default(0),
		field.Int("xp").
			Default(0),
		field.Int("strategy_xp").
			Default(0),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("session_id"),
	}
}
