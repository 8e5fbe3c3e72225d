// Code generated by ent, DO NOT EDIT.

package badge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldLearnerID, v))
}

// BadgeKey applies equality check predicate on the "badge_key" field. It's identical to BadgeKeyEQ.
func BadgeKey(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeKey, v))
}

// EarnedAt applies equality check predicate on the "earned_at" field. It's identical to EarnedAtEQ.
func EarnedAt(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldEarnedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldLearnerID, v))
}

// BadgeKeyEQ applies the EQ predicate on the "badge_key" field.
func BadgeKeyEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldBadgeKey, v))
}

// BadgeKeyNEQ applies the NEQ predicate on the "badge_key" field.
func BadgeKeyNEQ(v string) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldBadgeKey, v))
}

// BadgeKeyIn applies the In predicate on the "badge_key" field.
func BadgeKeyIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldBadgeKey, vs...))
}

// BadgeKeyNotIn applies the NotIn predicate on the "badge_key" field.
func BadgeKeyNotIn(vs ...string) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldBadgeKey, vs...))
}

// BadgeKeyGT applies the GT predicate on the "badge_key" field.
func BadgeKeyGT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldBadgeKey, v))
}

// BadgeKeyGTE applies the GTE predicate on the "badge_key" field.
func BadgeKeyGTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldBadgeKey, v))
}

// BadgeKeyLT applies the LT predicate on the "badge_key" field.
func BadgeKeyLT(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldBadgeKey, v))
}

// BadgeKeyLTE applies the LTE predicate on the "badge_key" field.
func BadgeKeyLTE(v string) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldBadgeKey, v))
}

// BadgeKeyContains applies the Contains predicate on the "badge_key" field.
func BadgeKeyContains(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContains(FieldBadgeKey, v))
}

// BadgeKeyHasPrefix applies the HasPrefix predicate on the "badge_key" field.
func BadgeKeyHasPrefix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasPrefix(FieldBadgeKey, v))
}

// BadgeKeyHasSuffix applies the HasSuffix predicate on the "badge_key" field.
func BadgeKeyHasSuffix(v string) predicate.Badge {
	return predicate.Badge(sql.FieldHasSuffix(FieldBadgeKey, v))
}

// BadgeKeyEqualFold applies the EqualFold predicate on the "badge_key" field.
func BadgeKeyEqualFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldEqualFold(FieldBadgeKey, v))
}

// BadgeKeyContainsFold applies the ContainsFold predicate on the "badge_key" field.
func BadgeKeyContainsFold(v string) predicate.Badge {
	return predicate.Badge(sql.FieldContainsFold(FieldBadgeKey, v))
}

// EarnedAtEQ applies the EQ predicate on the "earned_at" field.
func EarnedAtEQ(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldEQ(FieldEarnedAt, v))
}

// EarnedAtNEQ applies the NEQ predicate on the "earned_at" field.
func EarnedAtNEQ(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldNEQ(FieldEarnedAt, v))
}

// EarnedAtIn applies the In predicate on the "earned_at" field.
func EarnedAtIn(vs ...time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldIn(FieldEarnedAt, vs...))
}

// EarnedAtNotIn applies the NotIn predicate on the "earned_at" field.
func EarnedAtNotIn(vs ...time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldNotIn(FieldEarnedAt, vs...))
}

// EarnedAtGT applies the GT predicate on the "earned_at" field.
func EarnedAtGT(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldGT(FieldEarnedAt, v))
}

// EarnedAtGTE applies the GTE predicate on the "earned_at" field.
func EarnedAtGTE(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldGTE(FieldEarnedAt, v))
}

// EarnedAtLT applies the LT predicate on the "earned_at" field.
func EarnedAtLT(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldLT(FieldEarnedAt, v))
}

// EarnedAtLTE applies the LTE predicate on the "earned_at" field.
func EarnedAtLTE(v time.Time) predicate.Badge {
	return predicate.Badge(sql.FieldLTE(FieldEarnedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Badge) predicate.Badge {
	return predicate.Badge(sql.NotPredicates(p))
}
