// Code generated by ent, DO NOT EDIT.

package streak

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLearnerID, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrentStreak, v))
}

// LastPlayedDate applies equality check predicate on the "last_played_date" field. It's identical to LastPlayedDateEQ.
func LastPlayedDate(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastPlayedDate, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldCurrentStreak, v))
}

// LastPlayedDateEQ applies the EQ predicate on the "last_played_date" field.
func LastPlayedDateEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastPlayedDate, v))
}

// LastPlayedDateNEQ applies the NEQ predicate on the "last_played_date" field.
func LastPlayedDateNEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLastPlayedDate, v))
}

// LastPlayedDateIn applies the In predicate on the "last_played_date" field.
func LastPlayedDateIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLastPlayedDate, vs...))
}

// LastPlayedDateNotIn applies the NotIn predicate on the "last_played_date" field.
func LastPlayedDateNotIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLastPlayedDate, vs...))
}

// LastPlayedDateGT applies the GT predicate on the "last_played_date" field.
func LastPlayedDateGT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLastPlayedDate, v))
}

// LastPlayedDateGTE applies the GTE predicate on the "last_played_date" field.
func LastPlayedDateGTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLastPlayedDate, v))
}

// LastPlayedDateLT applies the LT predicate on the "last_played_date" field.
func LastPlayedDateLT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLastPlayedDate, v))
}

// LastPlayedDateLTE applies the LTE predicate on the "last_played_date" field.
func LastPlayedDateLTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLastPlayedDate, v))
}

// LastPlayedDateContains applies the Contains predicate on the "last_played_date" field.
func LastPlayedDateContains(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContains(FieldLastPlayedDate, v))
}

// LastPlayedDateHasPrefix applies the HasPrefix predicate on the "last_played_date" field.
func LastPlayedDateHasPrefix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasPrefix(FieldLastPlayedDate, v))
}

// LastPlayedDateHasSuffix applies the HasSuffix predicate on the "last_played_date" field.
func LastPlayedDateHasSuffix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasSuffix(FieldLastPlayedDate, v))
}

// LastPlayedDateEqualFold applies the EqualFold predicate on the "last_played_date" field.
func LastPlayedDateEqualFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEqualFold(FieldLastPlayedDate, v))
}

// LastPlayedDateContainsFold applies the ContainsFold predicate on the "last_played_date" field.
func LastPlayedDateContainsFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContainsFold(FieldLastPlayedDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.NotPredicates(p))
}
