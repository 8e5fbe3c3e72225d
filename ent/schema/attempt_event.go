package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submitted answer. Attempt 1 and the optional
// retry are separate events sharing a round_id.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("round_id").
			NotEmpty().
			Comment("Groups the attempts of one round"),
		field.String("activity_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty().
			Comment("Canonical skill key"),
		field.String("mode").
			NotEmpty().
			Comment("warmup, main, boss, or review"),
		field.Int("attempt_number").
			Comment("1 or 2"),
		field.Int("choice_index").
			Comment("Choice the learner picked"),
		field.Bool("is_correct"),
		field.Bool("used_hint"),
		field.Int("response_time_ms"),
		field.Int("xp_awarded").
			Default(0),
		field.Int("strategy_xp").
			Default(0),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "skill"),
		index.Fields("session_id"),
		index.Fields("is_correct"),
	}
}
