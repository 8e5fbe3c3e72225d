package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Badge is one earned achievement. The (learner, key) uniqueness backs
// award deduplication.
type Badge struct {
	ent.Schema
}

func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("badge_key").
			NotEmpty(),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Badge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "badge_key").
			Unique(),
	}
}
