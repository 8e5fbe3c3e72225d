// Code generated by ent, DO NOT EDIT.

package badge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the badge type in the database.
	Label = "badge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldBadgeKey holds the string denoting the badge_key field in the database.
	FieldBadgeKey = "badge_key"
	// FieldEarnedAt holds the string denoting the earned_at field in the database.
	FieldEarnedAt = "earned_at"
	// Table holds the table name of the badge in the database.
	Table = "badges"
)

// Columns holds all SQL columns for badge fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldBadgeKey,
	FieldEarnedAt,
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
	// BadgeKeyValidator is a validator for the "badge_key" field. It is called by the builders before save.
	BadgeKeyValidator func(string) error
	// DefaultEarnedAt holds the default value on creation for the "earned_at" field.
	DefaultEarnedAt func() time.Time
)

// OrderOption defines the ordering options for the Badge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByBadgeKey orders the results by the badge_key field.
func ByBadgeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeKey, opts...).ToFunc()
}

// ByEarnedAt orders the results by the earned_at field.
func ByEarnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarnedAt, opts...).ToFunc()
}
