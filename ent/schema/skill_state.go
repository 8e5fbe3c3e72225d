package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillState is the per-learner row for one of the six fixed skills.
// All six rows are default-initialized before the first read.
type SkillState struct {
	ent.Schema
}

func (SkillState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.Int("level").
			Default(1).
			Min(1).
			Max(5),
		field.Int("xp").
			Default(0).
			Min(0),
		field.Float("mastery_score").
			Default(0).
			Min(0).
			Max(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SkillState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill").
			Unique(),
	}
}
