package session

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

// questMainTarget is how many main-or-review rounds the daily quest asks for.
const questMainTarget = 2

// FirstAttempt is one attempt-1 record from today, the only kind of
// attempt that counts toward quest completion.
type FirstAttempt struct {
	Mode      mastery.Mode
	Skill     skills.Skill
	IsCorrect bool
	CreatedAt time.Time
}

// QuestCompletion breaks down which quest steps today's play has covered.
type QuestCompletion struct {
	Warmup    bool
	MainCount int
	Boss      bool
}

// DailyQuestState is the derived picture of today's quest: what has been
// played, what remains, and where to focus next.
type DailyQuestState struct {
	Date            string // YYYY-MM-DD, local day
	RoundsToday     int
	DailyGoal       int
	ProgressPercent int
	DueReviews      int
	WeakestSkills   []skills.Skill
	Completed       QuestCompletion
	RemainingSteps  []Phase
	IsComplete      bool
}

// QuestInput is everything the derivation reads.
type QuestInput struct {
	Now            time.Time
	FirstAttempts  []FirstAttempt // today's attempt-1 records, any mode
	SkillStates    []mastery.SkillState
	DueReviewCount int
	Settings       Settings
}

// DeriveDailyQuest computes today's quest state. Pure; retries never
// double-count because the input carries first attempts only. Main and
// review rounds both count toward the main target, and the boss step
// drops out entirely when disabled in settings.
func DeriveDailyQuest(in QuestInput) DailyQuestState {
	settings := in.Settings.Clamped()

	var done QuestCompletion
	for _, a := range in.FirstAttempts {
		switch a.Mode {
		case mastery.ModeWarmup:
			done.Warmup = true
		case mastery.ModeMain, mastery.ModeReview:
			done.MainCount++
		case mastery.ModeBoss:
			done.Boss = true
		}
	}

	var remaining []Phase
	if !done.Warmup {
		remaining = append(remaining, PhaseWarmup)
	}
	for i := done.MainCount; i < questMainTarget; i++ {
		remaining = append(remaining, PhaseMain)
	}
	if settings.BossEnabled && !done.Boss {
		remaining = append(remaining, PhaseBoss)
	}

	roundsToday := len(in.FirstAttempts)
	counted := roundsToday
	if counted > settings.DailyGoal {
		counted = settings.DailyGoal
	}
	progress := int(math.Round(float64(counted) / float64(settings.DailyGoal) * 100))
	if progress > 100 {
		progress = 100
	}

	return DailyQuestState{
		Date:            in.Now.Format("2006-01-02"),
		RoundsToday:     roundsToday,
		DailyGoal:       settings.DailyGoal,
		ProgressPercent: progress,
		DueReviews:      in.DueReviewCount,
		WeakestSkills:   weakestTwo(in.SkillStates),
		Completed:       done,
		RemainingSteps:  remaining,
		IsComplete:      len(remaining) == 0,
	}
}

// weakestTwo returns the two lowest-mastery skills, for the quest's
// focus hint. Stable sort keeps the canonical skill order on ties.
func weakestTwo(states []mastery.SkillState) []skills.Skill {
	sorted := make([]mastery.SkillState, len(states))
	copy(sorted, states)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MasteryScore < sorted[j].MasteryScore
	})
	n := 2
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]skills.Skill, 0, n)
	for _, s := range sorted[:n] {
		out = append(out, s.Skill)
	}
	return out
}
