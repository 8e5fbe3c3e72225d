package session

import (
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

func questAttempts(warmup bool, mains int, boss bool) []FirstAttempt {
	now := time.Now()
	var out []FirstAttempt
	if warmup {
		out = append(out, FirstAttempt{Mode: mastery.ModeWarmup, Skill: skills.Interpret, CreatedAt: now})
	}
	for i := 0; i < mains; i++ {
		out = append(out, FirstAttempt{Mode: mastery.ModeMain, Skill: skills.Analyze, CreatedAt: now})
	}
	if boss {
		out = append(out, FirstAttempt{Mode: mastery.ModeBoss, Skill: skills.Infer, CreatedAt: now})
	}
	return out
}

func TestDeriveDailyQuest_CompletionGating(t *testing.T) {
	tests := []struct {
		name         string
		warmup       bool
		mains        int
		boss         bool
		bossEnabled  bool
		wantComplete bool
	}{
		{"nothing played", false, 0, false, true, false},
		{"warmup only", true, 0, false, true, false},
		{"warmup one main", true, 1, false, true, false},
		{"warmup two mains no boss", true, 2, false, true, false},
		{"all steps", true, 2, true, true, true},
		{"boss disabled skips boss", true, 2, false, false, true},
		{"boss without warmup", false, 2, true, true, false},
		{"three mains no warmup", false, 3, true, true, false},
	}

	for _, tt := range tests {
		settings := DefaultSettings()
		settings.BossEnabled = tt.bossEnabled

		state := DeriveDailyQuest(QuestInput{
			Now:           time.Now(),
			FirstAttempts: questAttempts(tt.warmup, tt.mains, tt.boss),
			SkillStates:   statesWithMastery(nil),
			Settings:      settings,
		})

		if state.IsComplete != tt.wantComplete {
			t.Errorf("%s: IsComplete = %v, want %v (remaining %v)",
				tt.name, state.IsComplete, tt.wantComplete, state.RemainingSteps)
		}
	}
}

func TestDeriveDailyQuest_ReviewCountsTowardMain(t *testing.T) {
	now := time.Now()
	attempts := []FirstAttempt{
		{Mode: mastery.ModeWarmup, Skill: skills.Interpret, CreatedAt: now},
		{Mode: mastery.ModeReview, Skill: skills.Analyze, CreatedAt: now},
		{Mode: mastery.ModeMain, Skill: skills.Evaluate, CreatedAt: now},
		{Mode: mastery.ModeBoss, Skill: skills.Infer, CreatedAt: now},
	}

	state := DeriveDailyQuest(QuestInput{
		Now:           now,
		FirstAttempts: attempts,
		SkillStates:   statesWithMastery(nil),
		Settings:      DefaultSettings(),
	})

	if state.Completed.MainCount != 2 {
		t.Errorf("MainCount = %d, want 2 (review counts)", state.Completed.MainCount)
	}
	if !state.IsComplete {
		t.Errorf("quest should be complete, remaining %v", state.RemainingSteps)
	}
}

func TestDeriveDailyQuest_RemainingSteps(t *testing.T) {
	state := DeriveDailyQuest(QuestInput{
		Now:           time.Now(),
		FirstAttempts: questAttempts(true, 1, false),
		SkillStates:   statesWithMastery(nil),
		Settings:      DefaultSettings(),
	})

	want := []Phase{PhaseMain, PhaseBoss}
	if len(state.RemainingSteps) != len(want) {
		t.Fatalf("RemainingSteps = %v, want %v", state.RemainingSteps, want)
	}
	for i := range want {
		if state.RemainingSteps[i] != want[i] {
			t.Errorf("RemainingSteps[%d] = %s, want %s", i, state.RemainingSteps[i], want[i])
		}
	}
}

func TestDeriveDailyQuest_ProgressPercent(t *testing.T) {
	tests := []struct {
		rounds    int
		dailyGoal int
		want      int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{9, 3, 100}, // overshoot capped
		{1, 1, 100},
		{5, 10, 50},
	}

	for _, tt := range tests {
		settings := DefaultSettings()
		settings.DailyGoal = tt.dailyGoal
		attempts := make([]FirstAttempt, tt.rounds)
		for i := range attempts {
			attempts[i] = FirstAttempt{Mode: mastery.ModeMain, Skill: skills.Analyze, CreatedAt: time.Now()}
		}

		state := DeriveDailyQuest(QuestInput{
			Now:           time.Now(),
			FirstAttempts: attempts,
			SkillStates:   statesWithMastery(nil),
			Settings:      settings,
		})

		if state.ProgressPercent != tt.want {
			t.Errorf("rounds %d goal %d: progress = %d, want %d",
				tt.rounds, tt.dailyGoal, state.ProgressPercent, tt.want)
		}
	}
}

func TestDeriveDailyQuest_WeakestSkills(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.9,
		skills.Analyze:      0.2,
		skills.Evaluate:     0.8,
		skills.Infer:        0.1,
		skills.Explain:      0.7,
		skills.SelfRegulate: 0.6,
	})

	state := DeriveDailyQuest(QuestInput{
		Now:         time.Now(),
		SkillStates: states,
		Settings:    DefaultSettings(),
	})

	if len(state.WeakestSkills) != 2 {
		t.Fatalf("WeakestSkills = %v, want 2 entries", state.WeakestSkills)
	}
	if state.WeakestSkills[0] != skills.Infer || state.WeakestSkills[1] != skills.Analyze {
		t.Errorf("WeakestSkills = %v, want [infer analyze]", state.WeakestSkills)
	}
}

func TestDeriveDailyQuest_GoalClamped(t *testing.T) {
	settings := DefaultSettings()
	settings.DailyGoal = 99

	state := DeriveDailyQuest(QuestInput{
		Now:         time.Now(),
		SkillStates: statesWithMastery(nil),
		Settings:    settings,
	})

	if state.DailyGoal != MaxDailyGoal {
		t.Errorf("DailyGoal = %d, want clamp %d", state.DailyGoal, MaxDailyGoal)
	}
}
