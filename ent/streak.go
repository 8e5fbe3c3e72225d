// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/streak"
)

// Streak is the model entity for the Streak schema.
type Streak struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// YYYY-MM-DD local day key
	LastPlayedDate string `json:"last_played_date,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Streak) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streak.FieldID, streak.FieldCurrentStreak:
			values[i] = new(sql.NullInt64)
		case streak.FieldLearnerID, streak.FieldLastPlayedDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Streak fields.
func (_m *Streak) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streak.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case streak.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case streak.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case streak.FieldLastPlayedDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_played_date", values[i])
			} else if value.Valid {
				_m.LastPlayedDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Streak.
// This includes values selected through modifiers, order, etc.
func (_m *Streak) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Streak.
// Note that you need to call Streak.Unwrap() before calling this method if this Streak
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Streak) Update() *StreakUpdateOne {
	return NewStreakClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Streak entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Streak) Unwrap() *Streak {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Streak is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Streak) String() string {
	var builder strings.Builder
	builder.WriteString("Streak(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("last_played_date=")
	builder.WriteString(_m.LastPlayedDate)
	builder.WriteByte(')')
	return builder.String()
}

// Streaks is a parsable slice of Streak.
type Streaks []*Streak
