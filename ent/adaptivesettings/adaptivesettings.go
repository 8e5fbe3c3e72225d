// Code generated by ent, DO NOT EDIT.

package adaptivesettings

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptivesettings type in the database.
	Label = "adaptive_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldMainRounds holds the string denoting the main_rounds field in the database.
	FieldMainRounds = "main_rounds"
	// FieldBossEnabled holds the string denoting the boss_enabled field in the database.
	FieldBossEnabled = "boss_enabled"
	// FieldBossIntensity holds the string denoting the boss_intensity field in the database.
	FieldBossIntensity = "boss_intensity"
	// FieldHintMode holds the string denoting the hint_mode field in the database.
	FieldHintMode = "hint_mode"
	// FieldDailyGoal holds the string denoting the daily_goal field in the database.
	FieldDailyGoal = "daily_goal"
	// Table holds the table name of the adaptivesettings in the database.
	Table = "adaptive_settings"
)

// Columns holds all SQL columns for adaptivesettings fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldMainRounds,
	FieldBossEnabled,
	FieldBossIntensity,
	FieldHintMode,
	FieldDailyGoal,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultMainRounds holds the default value on creation for the "main_rounds" field.
	DefaultMainRounds int
	// DefaultBossEnabled holds the default value on creation for the "boss_enabled" field.
	DefaultBossEnabled bool
	// DefaultBossIntensity holds the default value on creation for the "boss_intensity" field.
	DefaultBossIntensity int
	// DefaultHintMode holds the default value on creation for the "hint_mode" field.
	DefaultHintMode string
	// DefaultDailyGoal holds the default value on creation for the "daily_goal" field.
	DefaultDailyGoal int
)

// OrderOption defines the ordering options for the AdaptiveSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByMainRounds orders the results by the main_rounds field.
func ByMainRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainRounds, opts...).ToFunc()
}

// ByBossEnabled orders the results by the boss_enabled field.
func ByBossEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBossEnabled, opts...).ToFunc()
}

// ByBossIntensity orders the results by the boss_intensity field.
func ByBossIntensity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBossIntensity, opts...).ToFunc()
}

// ByHintMode orders the results by the hint_mode field.
func ByHintMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintMode, opts...).ToFunc()
}

// ByDailyGoal orders the results by the daily_goal field.
func ByDailyGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyGoal, opts...).ToFunc()
}
