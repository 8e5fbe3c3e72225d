package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/spacedrep"
	"github.com/abhisek/cogniz/internal/store"
)

// Quest derives today's daily quest state from the attempt log.
func (e *Engine) Quest(ctx context.Context) (session.DailyQuestState, error) {
	now := time.Now()
	settings, err := e.Settings(ctx)
	if err != nil {
		return session.DailyQuestState{}, fmt.Errorf("load settings: %w", err)
	}
	states, err := e.store.SkillStates().Load(ctx, e.learner.ID)
	if err != nil {
		return session.DailyQuestState{}, fmt.Errorf("load skill states: %w", err)
	}
	due, err := e.store.Reviews().Due(ctx, e.learner.ID, now, 0)
	if err != nil {
		return session.DailyQuestState{}, fmt.Errorf("load due reviews: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	attempts, err := e.store.Events().FirstAttemptsBetween(ctx, e.learner.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return session.DailyQuestState{}, fmt.Errorf("load today's attempts: %w", err)
	}

	firsts := make([]session.FirstAttempt, 0, len(attempts))
	for _, a := range attempts {
		firsts = append(firsts, session.FirstAttempt{
			Mode:      mastery.Mode(a.Mode),
			Skill:     a.Skill,
			IsCorrect: a.IsCorrect,
			CreatedAt: a.CreatedAt,
		})
	}

	return session.DeriveDailyQuest(session.QuestInput{
		Now:            now,
		FirstAttempts:  firsts,
		SkillStates:    states,
		DueReviewCount: len(due),
		Settings:       settings,
	}), nil
}

// Weekly builds the seven day report, compared against the week before.
func (e *Engine) Weekly(ctx context.Context) (session.WeeklyReport, error) {
	now := time.Now()
	attempts, err := e.store.Events().AttemptsSince(ctx, e.learner.ID, now.AddDate(0, 0, -14))
	if err != nil {
		return session.WeeklyReport{}, fmt.Errorf("load attempts: %w", err)
	}
	streak, err := e.store.Streaks().Get(ctx, e.learner.ID)
	if err != nil {
		return session.WeeklyReport{}, fmt.Errorf("load streak: %w", err)
	}

	records := make([]session.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		records = append(records, session.AttemptRecord{
			Skill:         a.Skill,
			IsCorrect:     a.IsCorrect,
			AttemptNumber: a.AttemptNumber,
			CreatedAt:     a.CreatedAt,
		})
	}

	return session.BuildWeeklyReport(session.WeeklyInput{
		Now:           now,
		Attempts:      records,
		CurrentStreak: streak.CurrentStreak,
	}), nil
}

// SkillOverview is the skill tree screen's data: every track's state plus
// the due review picture.
type SkillOverview struct {
	States []mastery.SkillState
	Due    spacedrep.DueSummary
	Streak store.StreakData
}

// Overview loads the learner's full progression picture.
func (e *Engine) Overview(ctx context.Context) (SkillOverview, error) {
	now := time.Now()
	states, err := e.store.SkillStates().Load(ctx, e.learner.ID)
	if err != nil {
		return SkillOverview{}, fmt.Errorf("load skill states: %w", err)
	}
	entries, err := e.store.Reviews().All(ctx, e.learner.ID)
	if err != nil {
		return SkillOverview{}, fmt.Errorf("load review entries: %w", err)
	}
	streak, err := e.store.Streaks().Get(ctx, e.learner.ID)
	if err != nil {
		return SkillOverview{}, fmt.Errorf("load streak: %w", err)
	}
	return SkillOverview{
		States: states,
		Due:    spacedrep.Summarize(entries, now),
		Streak: streak,
	}, nil
}

// EarnedBadges lists the learner's badges, newest first.
func (e *Engine) EarnedBadges(ctx context.Context) ([]store.BadgeRow, error) {
	return e.store.Badges().List(ctx, e.learner.ID)
}

// Reset snapshots the learner's progress and then wipes it. The profile
// survives; the snapshot is kept so the wipe can be inspected afterwards.
func (e *Engine) Reset(ctx context.Context) error {
	states, err := e.store.SkillStates().Load(ctx, e.learner.ID)
	if err != nil {
		return fmt.Errorf("load skill states: %w", err)
	}
	reviews, err := e.store.Reviews().All(ctx, e.learner.ID)
	if err != nil {
		return fmt.Errorf("load review entries: %w", err)
	}
	badgeRows, err := e.store.Badges().List(ctx, e.learner.ID)
	if err != nil {
		return fmt.Errorf("load badges: %w", err)
	}
	streak, err := e.store.Streaks().Get(ctx, e.learner.ID)
	if err != nil {
		return fmt.Errorf("load streak: %w", err)
	}
	settings, err := e.store.Settings().Get(ctx, e.learner.ID)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	keys := make([]string, 0, len(badgeRows))
	for _, b := range badgeRows {
		keys = append(keys, b.BadgeKey)
	}

	data := store.SnapshotData{
		Version:     1,
		SkillStates: states,
		Reviews:     reviews,
		BadgeKeys:   keys,
		Streak:      streak,
		Settings:    settings,
	}
	if err := e.store.Snapshots().Save(ctx, e.learner.ID, data); err != nil {
		return fmt.Errorf("snapshot before reset: %w", err)
	}
	if err := e.store.Snapshots().Prune(ctx, e.learner.ID, snapshotsKept); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if err := e.store.ResetLearner(ctx, e.learner.ID); err != nil {
		return err
	}
	e.badges.ResetSession()
	return nil
}
