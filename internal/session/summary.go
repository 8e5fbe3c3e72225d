package session

import (
	"time"

	"github.com/abhisek/cogniz/internal/skills"
)

// SkillRecap is one skill's line on the recap screen.
type SkillRecap struct {
	Skill   skills.Skill
	Label   string
	Rounds  int
	Correct int
	XP      int
}

// Summary holds the data displayed on the recap screen.
type Summary struct {
	Duration        time.Duration
	Rounds          int
	Correct         int
	FirstTryCorrect int
	Recoveries      int
	HintsUsed       int
	XP              int
	StrategyXP      int
	BestStreak      int
	Accuracy        float64
	LevelUps        []LevelUp
	Badges          []string
	SkillRecaps     []SkillRecap
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *SessionState) *Summary {
	var recaps []SkillRecap
	for _, sk := range skills.All() {
		tally, ok := state.BySkill[sk]
		if !ok {
			continue
		}
		recaps = append(recaps, SkillRecap{
			Skill:   sk,
			Label:   sk.Label(),
			Rounds:  tally.Rounds,
			Correct: tally.Correct,
			XP:      tally.XP,
		})
	}

	var accuracy float64
	if state.Rounds > 0 {
		accuracy = float64(state.Correct) / float64(state.Rounds)
	}

	return &Summary{
		Duration:        time.Since(state.StartTime),
		Rounds:          state.Rounds,
		Correct:         state.Correct,
		FirstTryCorrect: state.FirstTryCorrect,
		Recoveries:      state.Recoveries,
		HintsUsed:       state.HintsUsed,
		XP:              state.XP,
		StrategyXP:      state.StrategyXP,
		BestStreak:      state.BestStreak,
		Accuracy:        accuracy,
		LevelUps:        state.LevelUps,
		Badges:          state.Badges,
		SkillRecaps:     recaps,
	}
}
