// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cogniz/ent/adaptivesettings"
	"github.com/abhisek/cogniz/ent/attemptevent"
	"github.com/abhisek/cogniz/ent/badge"
	"github.com/abhisek/cogniz/ent/learner"
	"github.com/abhisek/cogniz/ent/reviewentry"
	"github.com/abhisek/cogniz/ent/schema"
	"github.com/abhisek/cogniz/ent/sessionevent"
	"github.com/abhisek/cogniz/ent/skillstate"
	"github.com/abhisek/cogniz/ent/snapshot"
	"github.com/abhisek/cogniz/ent/streak"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptivesettingsFields := schema.AdaptiveSettings{}.Fields()
	_ = adaptivesettingsFields
	// adaptivesettingsDescLearnerID is the schema descriptor for learner_id field.
	adaptivesettingsDescLearnerID := adaptivesettingsFields[0].Descriptor()
	// adaptivesettings.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	adaptivesettings.LearnerIDValidator = adaptivesettingsDescLearnerID.Validators[0].(func(string) error)
	// adaptivesettingsDescMainRounds is the schema descriptor for main_rounds field.
	adaptivesettingsDescMainRounds := adaptivesettingsFields[1].Descriptor()
	// adaptivesettings.DefaultMainRounds holds the default value on creation for the main_rounds field.
	adaptivesettings.DefaultMainRounds = adaptivesettingsDescMainRounds.Default.(int)
	// adaptivesettingsDescBossEnabled is the schema descriptor for boss_enabled field.
	adaptivesettingsDescBossEnabled := adaptivesettingsFields[2].Descriptor()
	// adaptivesettings.DefaultBossEnabled holds the default value on creation for the boss_enabled field.
	adaptivesettings.DefaultBossEnabled = adaptivesettingsDescBossEnabled.Default.(bool)
	// adaptivesettingsDescBossIntensity is the schema descriptor for boss_intensity field.
	adaptivesettingsDescBossIntensity := adaptivesettingsFields[3].Descriptor()
	// adaptivesettings.DefaultBossIntensity holds the default value on creation for the boss_intensity field.
	adaptivesettings.DefaultBossIntensity = adaptivesettingsDescBossIntensity.Default.(int)
	// adaptivesettingsDescHintMode is the schema descriptor for hint_mode field.
	adaptivesettingsDescHintMode := adaptivesettingsFields[4].Descriptor()
	// adaptivesettings.DefaultHintMode holds the default value on creation for the hint_mode field.
	adaptivesettings.DefaultHintMode = adaptivesettingsDescHintMode.Default.(string)
	// adaptivesettingsDescDailyGoal is the schema descriptor for daily_goal field.
	adaptivesettingsDescDailyGoal := adaptivesettingsFields[5].Descriptor()
	// adaptivesettings.DefaultDailyGoal holds the default value on creation for the daily_goal field.
	adaptivesettings.DefaultDailyGoal = adaptivesettingsDescDailyGoal.Default.(int)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[1].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescRoundID is the schema descriptor for round_id field.
	attempteventDescRoundID := attempteventFields[2].Descriptor()
	// attemptevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	attemptevent.RoundIDValidator = attempteventDescRoundID.Validators[0].(func(string) error)
	// attempteventDescActivityID is the schema descriptor for activity_id field.
	attempteventDescActivityID := attempteventFields[3].Descriptor()
	// attemptevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	attemptevent.ActivityIDValidator = attempteventDescActivityID.Validators[0].(func(string) error)
	// attempteventDescSkill is the schema descriptor for skill field.
	attempteventDescSkill := attempteventFields[4].Descriptor()
	// attemptevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	attemptevent.SkillValidator = attempteventDescSkill.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[5].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	// attempteventDescXpAwarded is the schema descriptor for xp_awarded field.
	attempteventDescXpAwarded := attempteventFields[11].Descriptor()
	// attemptevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	attemptevent.DefaultXpAwarded = attempteventDescXpAwarded.Default.(int)
	// attempteventDescStrategyXp is the schema descriptor for strategy_xp field.
	attempteventDescStrategyXp := attempteventFields[12].Descriptor()
	// attemptevent.DefaultStrategyXp holds the default value on creation for the strategy_xp field.
	attemptevent.DefaultStrategyXp = attempteventDescStrategyXp.Default.(int)
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescLearnerID is the schema descriptor for learner_id field.
	badgeDescLearnerID := badgeFields[0].Descriptor()
	// badge.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	badge.LearnerIDValidator = badgeDescLearnerID.Validators[0].(func(string) error)
	// badgeDescBadgeKey is the schema descriptor for badge_key field.
	badgeDescBadgeKey := badgeFields[1].Descriptor()
	// badge.BadgeKeyValidator is a validator for the "badge_key" field. It is called by the builders before save.
	badge.BadgeKeyValidator = badgeDescBadgeKey.Validators[0].(func(string) error)
	// badgeDescEarnedAt is the schema descriptor for earned_at field.
	badgeDescEarnedAt := badgeFields[2].Descriptor()
	// badge.DefaultEarnedAt holds the default value on creation for the earned_at field.
	badge.DefaultEarnedAt = badgeDescEarnedAt.Default.(func() time.Time)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[1].Descriptor()
	// learner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learner.NameValidator = learnerDescName.Validators[0].(func(string) error)
	// learnerDescAgeBand is the schema descriptor for age_band field.
	learnerDescAgeBand := learnerFields[2].Descriptor()
	// learner.DefaultAgeBand holds the default value on creation for the age_band field.
	learner.DefaultAgeBand = learnerDescAgeBand.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[3].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	// learnerDescID is the schema descriptor for id field.
	learnerDescID := learnerFields[0].Descriptor()
	// learner.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learner.IDValidator = learnerDescID.Validators[0].(func(string) error)
	reviewentryFields := schema.ReviewEntry{}.Fields()
	_ = reviewentryFields
	// reviewentryDescLearnerID is the schema descriptor for learner_id field.
	reviewentryDescLearnerID := reviewentryFields[0].Descriptor()
	// reviewentry.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewentry.LearnerIDValidator = reviewentryDescLearnerID.Validators[0].(func(string) error)
	// reviewentryDescActivityID is the schema descriptor for activity_id field.
	reviewentryDescActivityID := reviewentryFields[1].Descriptor()
	// reviewentry.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	reviewentry.ActivityIDValidator = reviewentryDescActivityID.Validators[0].(func(string) error)
	// reviewentryDescSkill is the schema descriptor for skill field.
	reviewentryDescSkill := reviewentryFields[2].Descriptor()
	// reviewentry.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	reviewentry.SkillValidator = reviewentryDescSkill.Validators[0].(func(string) error)
	// reviewentryDescIntervalDays is the schema descriptor for interval_days field.
	reviewentryDescIntervalDays := reviewentryFields[4].Descriptor()
	// reviewentry.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewentry.DefaultIntervalDays = reviewentryDescIntervalDays.Default.(int)
	// reviewentry.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewentry.IntervalDaysValidator = reviewentryDescIntervalDays.Validators[0].(func(int) error)
	// reviewentryDescEase is the schema descriptor for ease field.
	reviewentryDescEase := reviewentryFields[5].Descriptor()
	// reviewentry.DefaultEase holds the default value on creation for the ease field.
	reviewentry.DefaultEase = reviewentryDescEase.Default.(float64)
	// reviewentryDescCreatedAt is the schema descriptor for created_at field.
	reviewentryDescCreatedAt := reviewentryFields[7].Descriptor()
	// reviewentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewentry.DefaultCreatedAt = reviewentryDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[0].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescRounds is the schema descriptor for rounds field.
	sessioneventDescRounds := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultRounds holds the default value on creation for the rounds field.
	sessionevent.DefaultRounds = sessioneventDescRounds.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescXp is the schema descriptor for xp field.
	sessioneventDescXp := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultXp holds the default value on creation for the xp field.
	sessionevent.DefaultXp = sessioneventDescXp.Default.(int)
	// sessioneventDescStrategyXp is the schema descriptor for strategy_xp field.
	sessioneventDescStrategyXp := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultStrategyXp holds the default value on creation for the strategy_xp field.
	sessionevent.DefaultStrategyXp = sessioneventDescStrategyXp.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	skillstateFields := schema.SkillState{}.Fields()
	_ = skillstateFields
	// skillstateDescLearnerID is the schema descriptor for learner_id field.
	skillstateDescLearnerID := skillstateFields[0].Descriptor()
	// skillstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	skillstate.LearnerIDValidator = skillstateDescLearnerID.Validators[0].(func(string) error)
	// skillstateDescSkill is the schema descriptor for skill field.
	skillstateDescSkill := skillstateFields[1].Descriptor()
	// skillstate.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	skillstate.SkillValidator = skillstateDescSkill.Validators[0].(func(string) error)
	// skillstateDescLevel is the schema descriptor for level field.
	skillstateDescLevel := skillstateFields[2].Descriptor()
	// skillstate.DefaultLevel holds the default value on creation for the level field.
	skillstate.DefaultLevel = skillstateDescLevel.Default.(int)
	// skillstate.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	skillstate.LevelValidator = func() func(int) error {
		validators := skillstateDescLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(level int) error {
			for _, fn := range fns {
				if err := fn(level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillstateDescXp is the schema descriptor for xp field.
	skillstateDescXp := skillstateFields[3].Descriptor()
	// skillstate.DefaultXp holds the default value on creation for the xp field.
	skillstate.DefaultXp = skillstateDescXp.Default.(int)
	// skillstate.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	skillstate.XpValidator = skillstateDescXp.Validators[0].(func(int) error)
	// skillstateDescMasteryScore is the schema descriptor for mastery_score field.
	skillstateDescMasteryScore := skillstateFields[4].Descriptor()
	// skillstate.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	skillstate.DefaultMasteryScore = skillstateDescMasteryScore.Default.(float64)
	// skillstate.MasteryScoreValidator is a validator for the "mastery_score" field. It is called by the builders before save.
	skillstate.MasteryScoreValidator = func() func(float64) error {
		validators := skillstateDescMasteryScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery_score float64) error {
			for _, fn := range fns {
				if err := fn(mastery_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillstateDescUpdatedAt is the schema descriptor for updated_at field.
	skillstateDescUpdatedAt := skillstateFields[5].Descriptor()
	// skillstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillstate.DefaultUpdatedAt = skillstateDescUpdatedAt.Default.(func() time.Time)
	// skillstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillstate.UpdateDefaultUpdatedAt = skillstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[0].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	streakFields := schema.Streak{}.Fields()
	_ = streakFields
	// streakDescLearnerID is the schema descriptor for learner_id field.
	streakDescLearnerID := streakFields[0].Descriptor()
	// streak.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	streak.LearnerIDValidator = streakDescLearnerID.Validators[0].(func(string) error)
	// streakDescCurrentStreak is the schema descriptor for current_streak field.
	streakDescCurrentStreak := streakFields[1].Descriptor()
	// streak.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	streak.DefaultCurrentStreak = streakDescCurrentStreak.Default.(int)
	// streakDescLastPlayedDate is the schema descriptor for last_played_date field.
	streakDescLastPlayedDate := streakFields[2].Descriptor()
	// streak.DefaultLastPlayedDate holds the default value on creation for the last_played_date field.
	streak.DefaultLastPlayedDate = streakDescLastPlayedDate.Default.(string)
}
