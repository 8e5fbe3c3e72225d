// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptiveSettingsColumns holds the columns for the "adaptive_settings" table.
	AdaptiveSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "main_rounds", Type: field.TypeInt, Default: 1},
		{Name: "boss_enabled", Type: field.TypeBool, Default: true},
		{Name: "boss_intensity", Type: field.TypeInt, Default: 3},
		{Name: "hint_mode", Type: field.TypeString, Default: "guided"},
		{Name: "daily_goal", Type: field.TypeInt, Default: 3},
	}
	// AdaptiveSettingsTable holds the schema information for the "adaptive_settings" table.
	AdaptiveSettingsTable = &schema.Table{
		Name:       "adaptive_settings",
		Columns:    AdaptiveSettingsColumns,
		PrimaryKey: []*schema.Column{AdaptiveSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptivesettings_learner_id",
				Unique:  true,
				Columns: []*schema.Column{AdaptiveSettingsColumns[1]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "round_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "choice_index", Type: field.TypeInt},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "used_hint", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
		{Name: "strategy_xp", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_learner_id_skill",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[7]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_is_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[11]},
			},
		},
	}
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "badge_key", Type: field.TypeString},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badge_learner_id_badge_key",
				Unique:  true,
				Columns: []*schema.Column{BadgesColumns[1], BadgesColumns[2]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "age_band", Type: field.TypeString, Default: "adult"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
	}
	// ReviewEntriesColumns holds the columns for the "review_entries" table.
	ReviewEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease", Type: field.TypeFloat64, Default: 2.5},
		{Name: "last_result", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReviewEntriesTable holds the schema information for the "review_entries" table.
	ReviewEntriesTable = &schema.Table{
		Name:       "review_entries",
		Columns:    ReviewEntriesColumns,
		PrimaryKey: []*schema.Column{ReviewEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewentry_learner_id_activity_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewEntriesColumns[1], ReviewEntriesColumns[2]},
			},
			{
				Name:    "reviewentry_learner_id_skill",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[1], ReviewEntriesColumns[3]},
			},
			{
				Name:    "reviewentry_due_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "rounds", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "strategy_xp", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SkillStatesColumns holds the columns for the "skill_states" table.
	SkillStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillStatesTable holds the schema information for the "skill_states" table.
	SkillStatesTable = &schema.Table{
		Name:       "skill_states",
		Columns:    SkillStatesColumns,
		PrimaryKey: []*schema.Column{SkillStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillstate_learner_id_skill",
				Unique:  true,
				Columns: []*schema.Column{SkillStatesColumns[1], SkillStatesColumns[2]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// StreaksColumns holds the columns for the "streaks" table.
	StreaksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_played_date", Type: field.TypeString, Default: ""},
	}
	// StreaksTable holds the schema information for the "streaks" table.
	StreaksTable = &schema.Table{
		Name:       "streaks",
		Columns:    StreaksColumns,
		PrimaryKey: []*schema.Column{StreaksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streak_learner_id",
				Unique:  true,
				Columns: []*schema.Column{StreaksColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptiveSettingsTable,
		AttemptEventsTable,
		BadgesTable,
		LearnersTable,
		ReviewEntriesTable,
		SessionEventsTable,
		SkillStatesTable,
		SnapshotsTable,
		StreaksTable,
	}
)

func init() {
}
