// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptiveSettings is the predicate function for adaptivesettings builders.
type AdaptiveSettings func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// Badge is the predicate function for badge builders.
type Badge func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// ReviewEntry is the predicate function for reviewentry builders.
type ReviewEntry func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SkillState is the predicate function for skillstate builders.
type SkillState func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Streak is the predicate function for streak builders.
type Streak func(*sql.Selector)
