package session

import (
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

func statesWithMastery(scores map[skills.Skill]float64) []mastery.SkillState {
	var out []mastery.SkillState
	for _, sk := range skills.All() {
		s := mastery.DefaultSkillState(sk)
		if v, ok := scores[sk]; ok {
			s.MasteryScore = v
		}
		out = append(out, s)
	}
	return out
}

func TestChooseNextItem_ReviewPrecedence(t *testing.T) {
	in := PlannerInput{
		Now:            time.Now(),
		DueReviewCount: 3,
		DueBySkill:     map[skills.Skill]int{skills.Evaluate: 3},
		SkillStates:    statesWithMastery(nil),
		Phase:          PhaseMain,
	}

	plan := ChooseNextItem(in)

	if plan.Mode != mastery.ModeReview {
		t.Errorf("Mode = %s, want review", plan.Mode)
	}
	if plan.Skill != skills.Evaluate {
		t.Errorf("Skill = %s, want evaluate", plan.Skill)
	}
	if plan.Source != SourceReviewQueue {
		t.Errorf("Source = %s, want review_queue", plan.Source)
	}
}

func TestChooseNextItem_BossIgnoresDueReviews(t *testing.T) {
	in := PlannerInput{
		Now:            time.Now(),
		DueReviewCount: 5,
		DueBySkill:     map[skills.Skill]int{skills.Infer: 5},
		SkillStates:    statesWithMastery(map[skills.Skill]float64{skills.Analyze: 0.9}),
		Phase:          PhaseBoss,
	}

	plan := ChooseNextItem(in)

	if plan.Mode != mastery.ModeBoss {
		t.Errorf("Mode = %s, want boss despite due reviews", plan.Mode)
	}
	if plan.Source != SourceNewPool {
		t.Errorf("Source = %s, want new_pool", plan.Source)
	}
}

func TestChooseNextItem_WarmupTargetsWeakestBelowLevel(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.8,
		skills.Analyze:      0.1, // weakest
		skills.Evaluate:     0.7,
		skills.Infer:        0.6,
		skills.Explain:      0.5,
		skills.SelfRegulate: 0.4,
	})
	for i := range states {
		states[i].Level = 3
	}

	plan := ChooseNextItem(PlannerInput{Now: time.Now(), SkillStates: states, Phase: PhaseWarmup})

	if plan.Mode != mastery.ModeWarmup {
		t.Errorf("Mode = %s, want warmup", plan.Mode)
	}
	if plan.Skill != skills.Analyze {
		t.Errorf("Skill = %s, want analyze", plan.Skill)
	}
	if plan.TargetDifficulty != 2 {
		t.Errorf("TargetDifficulty = %d, want 2 (level-1)", plan.TargetDifficulty)
	}
}

func TestChooseNextItem_WarmupDifficultyFloor(t *testing.T) {
	// Level-1 skill: warmup target stays at 1, never 0.
	plan := ChooseNextItem(PlannerInput{
		Now:         time.Now(),
		SkillStates: statesWithMastery(nil),
		Phase:       PhaseWarmup,
	})

	if plan.TargetDifficulty != 1 {
		t.Errorf("TargetDifficulty = %d, want floor 1", plan.TargetDifficulty)
	}
}

func TestChooseNextItem_BossIntensityOffsets(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{skills.Infer: 0.95})
	for i := range states {
		if states[i].Skill == skills.Infer {
			states[i].Level = 3
		}
	}

	tests := []struct {
		intensity  int
		wantTarget int
	}{
		{1, 3}, // offset -1
		{2, 4}, // -0.5 rounds half-up to 0
		{3, 4},
		{4, 5}, // offset +1
		{5, 5},
		{0, 4}, // zero means default intensity 3
	}

	for _, tt := range tests {
		plan := ChooseNextItem(PlannerInput{
			Now:           time.Now(),
			SkillStates:   states,
			Phase:         PhaseBoss,
			BossIntensity: tt.intensity,
		})
		if plan.Skill != skills.Infer {
			t.Errorf("intensity %d: Skill = %s, want infer", tt.intensity, plan.Skill)
		}
		if plan.TargetDifficulty != tt.wantTarget {
			t.Errorf("intensity %d: TargetDifficulty = %d, want %d", tt.intensity, plan.TargetDifficulty, tt.wantTarget)
		}
	}
}

func TestChooseNextItem_MainDrillsWeakestAtLevel(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.9,
		skills.Analyze:      0.9,
		skills.Evaluate:     0.9,
		skills.Infer:        0.9,
		skills.Explain:      0.2,
		skills.SelfRegulate: 0.9,
	})
	for i := range states {
		if states[i].Skill == skills.Explain {
			states[i].Level = 2
		}
	}

	plan := ChooseNextItem(PlannerInput{Now: time.Now(), SkillStates: states, Phase: PhaseMain})

	if plan.Mode != mastery.ModeMain {
		t.Errorf("Mode = %s, want main", plan.Mode)
	}
	if plan.Skill != skills.Explain {
		t.Errorf("Skill = %s, want explain", plan.Skill)
	}
	if plan.TargetDifficulty != 2 {
		t.Errorf("TargetDifficulty = %d, want 2 (at level)", plan.TargetDifficulty)
	}
}

func TestChooseNextItem_RecentErrorsShiftWeakness(t *testing.T) {
	// Evaluate has slightly higher mastery than Interpret, but two recent
	// errors outweigh the 0.1 mastery gap (2 x 0.06 > 0.1).
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.4,
		skills.Analyze:      0.9,
		skills.Evaluate:     0.5,
		skills.Infer:        0.9,
		skills.Explain:      0.9,
		skills.SelfRegulate: 0.9,
	})
	now := time.Now()
	attempts := []AttemptSummary{
		{Skill: skills.Evaluate, IsCorrect: false, CreatedAt: now},
		{Skill: skills.Evaluate, IsCorrect: false, CreatedAt: now},
	}

	plan := ChooseNextItem(PlannerInput{Now: now, SkillStates: states, RecentAttempts: attempts, Phase: PhaseMain})

	if plan.Skill != skills.Evaluate {
		t.Errorf("Skill = %s, want evaluate (error pressure)", plan.Skill)
	}
}

func TestChooseNextItem_WindowCapsAtSixteen(t *testing.T) {
	// Pile old Evaluate errors beyond the window, then fill the window with
	// correct answers: the old errors must not count.
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.4,
		skills.Analyze:      0.9,
		skills.Evaluate:     0.5,
		skills.Infer:        0.9,
		skills.Explain:      0.9,
		skills.SelfRegulate: 0.9,
	})
	now := time.Now()
	var attempts []AttemptSummary
	for i := 0; i < 5; i++ {
		attempts = append(attempts, AttemptSummary{Skill: skills.Evaluate, IsCorrect: false, CreatedAt: now.Add(-time.Hour)})
	}
	for i := 0; i < RecentWindowSize; i++ {
		attempts = append(attempts, AttemptSummary{Skill: skills.Analyze, IsCorrect: true, CreatedAt: now})
	}

	plan := ChooseNextItem(PlannerInput{Now: now, SkillStates: states, RecentAttempts: attempts, Phase: PhaseMain})

	if plan.Skill != skills.Interpret {
		t.Errorf("Skill = %s, want interpret (stale errors aged out)", plan.Skill)
	}
}

func TestChooseNextItem_ReviewDifficultyUsesWeakestLevel(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.9,
		skills.Analyze:      0.9,
		skills.Evaluate:     0.9,
		skills.Infer:        0.9,
		skills.Explain:      0.1,
		skills.SelfRegulate: 0.9,
	})
	for i := range states {
		if states[i].Skill == skills.Explain {
			states[i].Level = 4
		}
	}

	plan := ChooseNextItem(PlannerInput{
		Now:            time.Now(),
		DueReviewCount: 1,
		DueBySkill:     map[skills.Skill]int{skills.Interpret: 1},
		SkillStates:    states,
		Phase:          PhaseWarmup,
	})

	if plan.Skill != skills.Interpret {
		t.Errorf("Skill = %s, want interpret (most due)", plan.Skill)
	}
	if plan.TargetDifficulty != 4 {
		t.Errorf("TargetDifficulty = %d, want weakest skill's level 4", plan.TargetDifficulty)
	}
}

func TestChooseNextItem_EmptyDueMapFallsBackToWeakest(t *testing.T) {
	states := statesWithMastery(map[skills.Skill]float64{
		skills.Interpret:    0.9,
		skills.Analyze:      0.9,
		skills.Evaluate:     0.9,
		skills.Infer:        0.9,
		skills.Explain:      0.9,
		skills.SelfRegulate: 0.05,
	})

	plan := ChooseNextItem(PlannerInput{
		Now:            time.Now(),
		DueReviewCount: 2,
		DueBySkill:     nil,
		SkillStates:    states,
		Phase:          PhaseMain,
	})

	if plan.Mode != mastery.ModeReview {
		t.Errorf("Mode = %s, want review", plan.Mode)
	}
	if plan.Skill != skills.SelfRegulate {
		t.Errorf("Skill = %s, want self_regulate fallback", plan.Skill)
	}
}
