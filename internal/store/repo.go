package store

import (
	"context"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
	"github.com/abhisek/cogniz/internal/spacedrep"
)

// AttemptEventData captures one answer submission for the append-only log.
type AttemptEventData struct {
	LearnerID      string
	SessionID      string
	RoundID        string
	ActivityID     string
	Skill          skills.Skill
	Mode           string // warmup, main, review, boss
	AttemptNumber  int    // 1 or 2
	ChoiceIndex    int
	IsCorrect      bool
	UsedHint       bool
	ResponseTimeMs int
	XPAwarded      int
	StrategyXP     int
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	LearnerID    string
	SessionID    string
	Action       string // started, completed, restarted, abandoned
	Rounds       int
	Correct      int
	XP           int
	StrategyXP   int
	DurationSecs int
}

// Attempt is a stored attempt row as returned by event queries.
type Attempt struct {
	Skill          skills.Skill
	Mode           string
	AttemptNumber  int
	IsCorrect      bool
	UsedHint       bool
	ResponseTimeMs int
	CreatedAt      time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records an answer submission.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// RecentAttempts returns the learner's newest attempts, newest first,
	// up to limit.
	RecentAttempts(ctx context.Context, learnerID string, limit int) ([]Attempt, error)

	// AttemptsSince returns all attempts at or after from, oldest first.
	AttemptsSince(ctx context.Context, learnerID string, from time.Time) ([]Attempt, error)

	// FirstAttemptsBetween returns first attempts (attempt number 1) in
	// [from, to), oldest first. Retries are excluded so each round counts
	// once.
	FirstAttemptsBetween(ctx context.Context, learnerID string, from, to time.Time) ([]Attempt, error)
}

// Learner is a stored learner profile.
type Learner struct {
	ID        string
	Name      string
	AgeBand   string
	CreatedAt time.Time
}

// LearnerRepo manages learner profiles.
type LearnerRepo interface {
	// Create adds a new learner with a generated ID.
	Create(ctx context.Context, name, ageBand string) (*Learner, error)

	// Get returns the learner with the given ID, or nil if absent.
	Get(ctx context.Context, id string) (*Learner, error)

	// GetByName returns the learner with the given name, or nil if absent.
	GetByName(ctx context.Context, name string) (*Learner, error)

	// List returns all learners ordered by creation time.
	List(ctx context.Context) ([]*Learner, error)
}

// SkillStateRepo manages per-skill progression rows.
type SkillStateRepo interface {
	// Load returns the learner's state for every skill in canonical order,
	// creating default rows for skills not yet seen.
	Load(ctx context.Context, learnerID string) ([]mastery.SkillState, error)

	// Upsert writes the state for one skill.
	Upsert(ctx context.Context, learnerID string, st mastery.SkillState) error
}

// ReviewRepo manages the spaced-repetition queue.
type ReviewRepo interface {
	// Upsert inserts or reschedules the entry for (learner, activity).
	Upsert(ctx context.Context, learnerID string, e spacedrep.ReviewEntry) error

	// Get returns the entry for (learner, activity), or nil if absent.
	Get(ctx context.Context, learnerID, activityID string) (*spacedrep.ReviewEntry, error)

	// Due returns entries due at or before now, soonest first, up to limit
	// (0 = unlimited).
	Due(ctx context.Context, learnerID string, now time.Time, limit int) ([]spacedrep.ReviewEntry, error)

	// All returns every entry for the learner, soonest due first.
	All(ctx context.Context, learnerID string) ([]spacedrep.ReviewEntry, error)
}

// BadgeRow is a stored earned badge.
type BadgeRow struct {
	BadgeKey string
	EarnedAt time.Time
}

// BadgeRepo manages earned badges. It satisfies badges.Store.
type BadgeRepo interface {
	// EarnedBadgeKeys reports which of keys the learner already holds.
	EarnedBadgeKeys(ctx context.Context, learnerID string, keys []string) (map[string]bool, error)

	// InsertBadges records newly earned badges.
	InsertBadges(ctx context.Context, learnerID string, keys []string) error

	// List returns all earned badges, newest first.
	List(ctx context.Context, learnerID string) ([]BadgeRow, error)
}

// SettingsData mirrors the adaptive settings row. Range enforcement is the
// caller's concern; the store persists what it is given.
type SettingsData struct {
	MainRounds    int
	BossEnabled   bool
	BossIntensity int
	HintMode      string
	DailyGoal     int
}

// DefaultSettingsData returns the settings used before a learner has saved any.
func DefaultSettingsData() SettingsData {
	return SettingsData{
		MainRounds:    1,
		BossEnabled:   true,
		BossIntensity: 3,
		HintMode:      "guided",
		DailyGoal:     3,
	}
}

// SettingsRepo manages per-learner adaptive settings.
type SettingsRepo interface {
	// Get returns the learner's settings, or defaults if none are saved.
	Get(ctx context.Context, learnerID string) (SettingsData, error)

	// Save upserts the learner's settings.
	Save(ctx context.Context, learnerID string, s SettingsData) error
}

// StreakData mirrors the daily streak row.
type StreakData struct {
	CurrentStreak  int
	LastPlayedDate string // YYYY-MM-DD, empty if never played
}

// StreakRepo manages the daily streak row.
type StreakRepo interface {
	// Get returns the learner's streak, zero-valued if none is saved.
	Get(ctx context.Context, learnerID string) (StreakData, error)

	// Save upserts the learner's streak.
	Save(ctx context.Context, learnerID string, d StreakData) error
}

// SnapshotData captures the full learner state at a point in time, taken
// before destructive operations so progress can be inspected afterwards.
type SnapshotData struct {
	Version     int                     `json:"version"`
	SkillStates []mastery.SkillState    `json:"skill_states"`
	Reviews     []spacedrep.ReviewEntry `json:"reviews"`
	BadgeKeys   []string                `json:"badge_keys"`
	Streak      StreakData              `json:"streak"`
	Settings    SettingsData            `json:"settings"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot stamped with the next global sequence.
	Save(ctx context.Context, learnerID string, data SnapshotData) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}
