// Code generated by ent, DO NOT EDIT.

package streak

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streak type in the database.
	Label = "streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLastPlayedDate holds the string denoting the last_played_date field in the database.
	FieldLastPlayedDate = "last_played_date"
	// Table holds the table name of the streak in the database.
	Table = "streaks"
)

// Columns holds all SQL columns for streak fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldCurrentStreak,
	FieldLastPlayedDate,
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
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultLastPlayedDate holds the default value on creation for the "last_played_date" field.
	DefaultLastPlayedDate string
)

// OrderOption defines the ordering options for the Streak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLastPlayedDate orders the results by the last_played_date field.
func ByLastPlayedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayedDate, opts...).ToFunc()
}
