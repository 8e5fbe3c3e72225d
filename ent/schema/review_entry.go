package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEntry is one spaced-repetition queue row, keyed by
// (learner, activity). Finalizing a round upserts the entry.
type ReviewEntry struct {
	ent.Schema
}

func (ReviewEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("activity_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.Time("due_at"),
		field.Int("interval_days").
			Default(1).
			Min(1),
		field.Float("ease").
			Default(2.5),
		field.Bool("last_result").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (ReviewEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "activity_id").
			Unique(),
		index.Fields("learner_id", "skill"),
		index.Fields("due_at"),
	}
}
