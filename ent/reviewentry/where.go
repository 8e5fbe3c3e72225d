// Code generated by ent, DO NOT EDIT.

package reviewentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldLearnerID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldActivityID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldSkill, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldDueAt, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldIntervalDays, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldEase, v))
}

// LastResult applies equality check predicate on the "last_result" field. It's identical to LastResultEQ.
func LastResult(v bool) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldLastResult, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldLearnerID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldActivityID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldContainsFold(FieldSkill, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldDueAt, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldEase, v))
}

// LastResultEQ applies the EQ predicate on the "last_result" field.
func LastResultEQ(v bool) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldLastResult, v))
}

// LastResultNEQ applies the NEQ predicate on the "last_result" field.
func LastResultNEQ(v bool) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldLastResult, v))
}

// LastResultIsNil applies the IsNil predicate on the "last_result" field.
func LastResultIsNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIsNull(FieldLastResult))
}

// LastResultNotNil applies the NotNil predicate on the "last_result" field.
func LastResultNotNil() predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotNull(FieldLastResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEntry) predicate.ReviewEntry {
	return predicate.ReviewEntry(sql.NotPredicates(p))
}
