// Code generated by ent, DO NOT EDIT.

package adaptivesettings

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldLearnerID, v))
}

// MainRounds applies equality check predicate on the "main_rounds" field. It's identical to MainRoundsEQ.
func MainRounds(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldMainRounds, v))
}

// BossEnabled applies equality check predicate on the "boss_enabled" field. It's identical to BossEnabledEQ.
func BossEnabled(v bool) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldBossEnabled, v))
}

// BossIntensity applies equality check predicate on the "boss_intensity" field. It's identical to BossIntensityEQ.
func BossIntensity(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldBossIntensity, v))
}

// HintMode applies equality check predicate on the "hint_mode" field. It's identical to HintModeEQ.
func HintMode(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldHintMode, v))
}

// DailyGoal applies equality check predicate on the "daily_goal" field. It's identical to DailyGoalEQ.
func DailyGoal(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldDailyGoal, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldContainsFold(FieldLearnerID, v))
}

// MainRoundsEQ applies the EQ predicate on the "main_rounds" field.
func MainRoundsEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldMainRounds, v))
}

// MainRoundsNEQ applies the NEQ predicate on the "main_rounds" field.
func MainRoundsNEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldMainRounds, v))
}

// MainRoundsIn applies the In predicate on the "main_rounds" field.
func MainRoundsIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldMainRounds, vs...))
}

// MainRoundsNotIn applies the NotIn predicate on the "main_rounds" field.
func MainRoundsNotIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldMainRounds, vs...))
}

// MainRoundsGT applies the GT predicate on the "main_rounds" field.
func MainRoundsGT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldMainRounds, v))
}

// MainRoundsGTE applies the GTE predicate on the "main_rounds" field.
func MainRoundsGTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldMainRounds, v))
}

// MainRoundsLT applies the LT predicate on the "main_rounds" field.
func MainRoundsLT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldMainRounds, v))
}

// MainRoundsLTE applies the LTE predicate on the "main_rounds" field.
func MainRoundsLTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldMainRounds, v))
}

// BossEnabledEQ applies the EQ predicate on the "boss_enabled" field.
func BossEnabledEQ(v bool) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldBossEnabled, v))
}

// BossEnabledNEQ applies the NEQ predicate on the "boss_enabled" field.
func BossEnabledNEQ(v bool) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldBossEnabled, v))
}

// BossIntensityEQ applies the EQ predicate on the "boss_intensity" field.
func BossIntensityEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldBossIntensity, v))
}

// BossIntensityNEQ applies the NEQ predicate on the "boss_intensity" field.
func BossIntensityNEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldBossIntensity, v))
}

// BossIntensityIn applies the In predicate on the "boss_intensity" field.
func BossIntensityIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldBossIntensity, vs...))
}

// BossIntensityNotIn applies the NotIn predicate on the "boss_intensity" field.
func BossIntensityNotIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldBossIntensity, vs...))
}

// BossIntensityGT applies the GT predicate on the "boss_intensity" field.
func BossIntensityGT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldBossIntensity, v))
}

// BossIntensityGTE applies the GTE predicate on the "boss_intensity" field.
func BossIntensityGTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldBossIntensity, v))
}

// BossIntensityLT applies the LT predicate on the "boss_intensity" field.
func BossIntensityLT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldBossIntensity, v))
}

// BossIntensityLTE applies the LTE predicate on the "boss_intensity" field.
func BossIntensityLTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldBossIntensity, v))
}

// HintModeEQ applies the EQ predicate on the "hint_mode" field.
func HintModeEQ(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldHintMode, v))
}

// HintModeNEQ applies the NEQ predicate on the "hint_mode" field.
func HintModeNEQ(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldHintMode, v))
}

// HintModeIn applies the In predicate on the "hint_mode" field.
func HintModeIn(vs ...string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldHintMode, vs...))
}

// HintModeNotIn applies the NotIn predicate on the "hint_mode" field.
func HintModeNotIn(vs ...string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldHintMode, vs...))
}

// HintModeGT applies the GT predicate on the "hint_mode" field.
func HintModeGT(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldHintMode, v))
}

// HintModeGTE applies the GTE predicate on the "hint_mode" field.
func HintModeGTE(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldHintMode, v))
}

// HintModeLT applies the LT predicate on the "hint_mode" field.
func HintModeLT(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldHintMode, v))
}

// HintModeLTE applies the LTE predicate on the "hint_mode" field.
func HintModeLTE(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldHintMode, v))
}

// HintModeContains applies the Contains predicate on the "hint_mode" field.
func HintModeContains(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldContains(FieldHintMode, v))
}

// HintModeHasPrefix applies the HasPrefix predicate on the "hint_mode" field.
func HintModeHasPrefix(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldHasPrefix(FieldHintMode, v))
}

// HintModeHasSuffix applies the HasSuffix predicate on the "hint_mode" field.
func HintModeHasSuffix(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldHasSuffix(FieldHintMode, v))
}

// HintModeEqualFold applies the EqualFold predicate on the "hint_mode" field.
func HintModeEqualFold(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEqualFold(FieldHintMode, v))
}

// HintModeContainsFold applies the ContainsFold predicate on the "hint_mode" field.
func HintModeContainsFold(v string) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldContainsFold(FieldHintMode, v))
}

// DailyGoalEQ applies the EQ predicate on the "daily_goal" field.
func DailyGoalEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyGoalNEQ applies the NEQ predicate on the "daily_goal" field.
func DailyGoalNEQ(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNEQ(FieldDailyGoal, v))
}

// DailyGoalIn applies the In predicate on the "daily_goal" field.
func DailyGoalIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldIn(FieldDailyGoal, vs...))
}

// DailyGoalNotIn applies the NotIn predicate on the "daily_goal" field.
func DailyGoalNotIn(vs ...int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldNotIn(FieldDailyGoal, vs...))
}

// DailyGoalGT applies the GT predicate on the "daily_goal" field.
func DailyGoalGT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGT(FieldDailyGoal, v))
}

// DailyGoalGTE applies the GTE predicate on the "daily_goal" field.
func DailyGoalGTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldGTE(FieldDailyGoal, v))
}

// DailyGoalLT applies the LT predicate on the "daily_goal" field.
func DailyGoalLT(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLT(FieldDailyGoal, v))
}

// DailyGoalLTE applies the LTE predicate on the "daily_goal" field.
func DailyGoalLTE(v int) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.FieldLTE(FieldDailyGoal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptiveSettings) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptiveSettings) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptiveSettings) predicate.AdaptiveSettings {
	return predicate.AdaptiveSettings(sql.NotPredicates(p))
}
