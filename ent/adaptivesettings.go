// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent/adaptivesettings"
)

// AdaptiveSettings is the model entity for the AdaptiveSettings schema.
type AdaptiveSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// MainRounds holds the value of the "main_rounds" field.
	MainRounds int `json:"main_rounds,omitempty"`
	// BossEnabled holds the value of the "boss_enabled" field.
	BossEnabled bool `json:"boss_enabled,omitempty"`
	// BossIntensity holds the value of the "boss_intensity" field.
	BossIntensity int `json:"boss_intensity,omitempty"`
	// HintMode holds the value of the "hint_mode" field.
	HintMode string `json:"hint_mode,omitempty"`
	// DailyGoal holds the value of the "daily_goal" field.
	DailyGoal    int `json:"daily_goal,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptiveSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptivesettings.FieldBossEnabled:
			values[i] = new(sql.NullBool)
		case adaptivesettings.FieldID, adaptivesettings.FieldMainRounds, adaptivesettings.FieldBossIntensity, adaptivesettings.FieldDailyGoal:
			values[i] = new(sql.NullInt64)
		case adaptivesettings.FieldLearnerID, adaptivesettings.FieldHintMode:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptiveSettings fields.
func (_m *AdaptiveSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptivesettings.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptivesettings.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case adaptivesettings.FieldMainRounds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field main_rounds", values[i])
			} else if value.Valid {
				_m.MainRounds = int(value.Int64)
			}
		case adaptivesettings.FieldBossEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field boss_enabled", values[i])
			} else if value.Valid {
				_m.BossEnabled = value.Bool
			}
		case adaptivesettings.FieldBossIntensity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field boss_intensity", values[i])
			} else if value.Valid {
				_m.BossIntensity = int(value.Int64)
			}
		case adaptivesettings.FieldHintMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_mode", values[i])
			} else if value.Valid {
				_m.HintMode = value.String
			}
		case adaptivesettings.FieldDailyGoal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_goal", values[i])
			} else if value.Valid {
				_m.DailyGoal = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptiveSettings.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptiveSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptiveSettings.
// Note that you need to call AdaptiveSettings.Unwrap() before calling this method if this AdaptiveSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptiveSettings) Update() *AdaptiveSettingsUpdateOne {
	return NewAdaptiveSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptiveSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptiveSettings) Unwrap() *AdaptiveSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptiveSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptiveSettings) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptiveSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("main_rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MainRounds))
	builder.WriteString(", ")
	builder.WriteString("boss_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.BossEnabled))
	builder.WriteString(", ")
	builder.WriteString("boss_intensity=")
	builder.WriteString(fmt.Sprintf("%v", _m.BossIntensity))
	builder.WriteString(", ")
	builder.WriteString("hint_mode=")
	builder.WriteString(_m.HintMode)
	builder.WriteString(", ")
	builder.WriteString("daily_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyGoal))
	builder.WriteByte(')')
	return builder.String()
}

// AdaptiveSettingsSlice is a parsable slice of AdaptiveSettings.
type AdaptiveSettingsSlice []*AdaptiveSettings
