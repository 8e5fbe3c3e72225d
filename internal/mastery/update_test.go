package mastery

import (
	"math"
	"testing"
)

func TestComputeXPAward(t *testing.T) {
	cases := []struct {
		name         string
		mode         Mode
		correct      bool
		attempt      int
		hint         bool
		wantXP       int
		wantStrategy int
	}{
		{"warmup correct first try", ModeWarmup, true, 1, false, 20, 0},
		{"main correct first try", ModeMain, true, 1, false, 26, 0},
		{"review correct first try", ModeReview, true, 1, false, 28, 0},
		{"boss correct first try", ModeBoss, true, 1, false, 38, 0},
		{"main correct on retry", ModeMain, true, 2, false, 30, 8},
		{"main incorrect first try", ModeMain, false, 1, false, 18, 0},
		{"main incorrect on retry", ModeMain, false, 2, false, 18, 0},
		{"main correct first try with hint", ModeMain, true, 1, true, 31, 5},
		{"main retry success with hint", ModeMain, true, 2, true, 35, 13},
		{"boss incorrect with hint", ModeBoss, false, 2, true, 35, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xp, strategy := ComputeXPAward(tc.mode, tc.correct, tc.attempt, tc.hint)
			if xp != tc.wantXP {
				t.Errorf("xpAwarded = %d, want %d", xp, tc.wantXP)
			}
			if strategy != tc.wantStrategy {
				t.Errorf("strategyXP = %d, want %d", strategy, tc.wantStrategy)
			}
			if strategy > xp {
				t.Errorf("strategyXP %d exceeds total %d", strategy, xp)
			}
		})
	}
}

func TestUpdateState_XPConservation(t *testing.T) {
	for _, mode := range AllModes() {
		for _, correct := range []bool{true, false} {
			for _, attempt := range []int{1, 2} {
				for _, hint := range []bool{true, false} {
					in := UpdateInput{
						CurrentLevel:        2,
						CurrentXP:           123,
						CurrentMasteryScore: 0.5,
						IsCorrect:           correct,
						AttemptNumber:       attempt,
						UsedHint:            hint,
						Mode:                mode,
					}
					res := UpdateState(in)
					if res.NewXP != in.CurrentXP+res.XPAwarded {
						t.Errorf("%s correct=%v attempt=%d hint=%v: NewXP %d != %d + %d",
							mode, correct, attempt, hint, res.NewXP, in.CurrentXP, res.XPAwarded)
					}
					if res.StrategyXP > res.XPAwarded {
						t.Errorf("strategyXP %d > xpAwarded %d", res.StrategyXP, res.XPAwarded)
					}
				}
			}
		}
	}
}

func TestUpdateState_MonotonicLevel(t *testing.T) {
	state := SkillState{Skill: "evaluate", Level: 1}
	for i := 0; i < 200; i++ {
		correct := i%3 != 0
		res := UpdateState(UpdateInput{
			CurrentLevel:        state.Level,
			CurrentXP:           state.XP,
			CurrentMasteryScore: state.MasteryScore,
			IsCorrect:           correct,
			AttemptNumber:       1,
			Mode:                ModeMain,
		})
		if res.NewLevel < state.Level {
			t.Fatalf("level decreased from %d to %d at round %d", state.Level, res.NewLevel, i)
		}
		state = Apply(state, res)
	}
}

func TestUpdateState_MasteryBounds(t *testing.T) {
	// Sustained perfect quality converges toward 1 without exceeding it.
	mastery := 0.0
	for i := 0; i < 1000; i++ {
		res := UpdateState(UpdateInput{
			CurrentLevel:        1,
			CurrentMasteryScore: mastery,
			IsCorrect:           true,
			AttemptNumber:       1,
			Mode:                ModeMain,
		})
		if res.NewMasteryScore < 0 || res.NewMasteryScore > 1 {
			t.Fatalf("mastery %f out of bounds at round %d", res.NewMasteryScore, i)
		}
		mastery = res.NewMasteryScore
	}
	if mastery < 0.99 {
		t.Errorf("mastery after 1000 perfect rounds = %f, want near 1", mastery)
	}

	// Sustained failure converges toward the incorrect-retry floor.
	mastery = 1.0
	for i := 0; i < 1000; i++ {
		res := UpdateState(UpdateInput{
			CurrentLevel:        1,
			CurrentMasteryScore: mastery,
			IsCorrect:           false,
			AttemptNumber:       2,
			Mode:                ModeMain,
		})
		if res.NewMasteryScore < 0 || res.NewMasteryScore > 1 {
			t.Fatalf("mastery %f out of bounds at round %d", res.NewMasteryScore, i)
		}
		mastery = res.NewMasteryScore
	}
	if mastery > 0.21 {
		t.Errorf("mastery after 1000 failed rounds = %f, want near 0.2", mastery)
	}
}

func TestUpdateState_LevelUpGating(t *testing.T) {
	// XP past the threshold but mastery below the floor: no level-up.
	res := UpdateState(UpdateInput{
		CurrentLevel:        1,
		CurrentXP:           500,
		CurrentMasteryScore: 0.5,
		IsCorrect:           false,
		AttemptNumber:       1,
		Mode:                ModeMain,
	})
	if res.LeveledUp || res.NewLevel != 1 {
		t.Errorf("leveled up with low mastery: level %d", res.NewLevel)
	}

	// Mastery above the floor but XP below the threshold: no level-up.
	res = UpdateState(UpdateInput{
		CurrentLevel:        1,
		CurrentXP:           10,
		CurrentMasteryScore: 0.95,
		IsCorrect:           true,
		AttemptNumber:       1,
		Mode:                ModeWarmup,
	})
	if res.LeveledUp || res.NewLevel != 1 {
		t.Errorf("leveled up with insufficient XP: level %d", res.NewLevel)
	}
}

func TestUpdateState_MultiLevelJump(t *testing.T) {
	// All four thresholds exceeded with mastery holding: one call climbs
	// from level 1 straight to 5. A deliberate catch-up mechanic — the loop
	// re-checks the same final mastery value at every threshold.
	res := UpdateState(UpdateInput{
		CurrentLevel:        1,
		CurrentXP:           600,
		CurrentMasteryScore: 0.95,
		IsCorrect:           true,
		AttemptNumber:       1,
		Mode:                ModeMain,
	})
	if res.NewLevel != 5 {
		t.Errorf("NewLevel = %d, want 5", res.NewLevel)
	}
	if !res.LeveledUp {
		t.Error("expected LeveledUp")
	}
}

func TestUpdateState_TerminalLevel(t *testing.T) {
	res := UpdateState(UpdateInput{
		CurrentLevel:        5,
		CurrentXP:           10000,
		CurrentMasteryScore: 1.0,
		IsCorrect:           true,
		AttemptNumber:       1,
		Mode:                ModeBoss,
	})
	if res.NewLevel != 5 {
		t.Errorf("NewLevel = %d, want terminal 5", res.NewLevel)
	}
	if res.LeveledUp {
		t.Error("LeveledUp should be false at terminal level")
	}
}

func TestUpdateState_FirstRoundScenario(t *testing.T) {
	// Level-1 learner, main phase, correct on attempt 1, no hint.
	res := UpdateState(UpdateInput{
		CurrentLevel:        1,
		CurrentXP:           0,
		CurrentMasteryScore: 0,
		IsCorrect:           true,
		AttemptNumber:       1,
		Mode:                ModeMain,
	})
	if res.XPAwarded != 26 {
		t.Errorf("XPAwarded = %d, want 26", res.XPAwarded)
	}
	if res.StrategyXP != 0 {
		t.Errorf("StrategyXP = %d, want 0", res.StrategyXP)
	}
	if math.Abs(res.NewMasteryScore-0.22) > 1e-9 {
		t.Errorf("NewMasteryScore = %f, want 0.22", res.NewMasteryScore)
	}
	if res.LeveledUp {
		t.Error("no level-up expected at 26 XP")
	}
}

func TestUpdateState_RetryWithHintScenario(t *testing.T) {
	// Same learner at 75 XP: wrong on attempt 1, correct on attempt 2 with a
	// hint. One engine call at finalization.
	prior := 0.22
	res := UpdateState(UpdateInput{
		CurrentLevel:        1,
		CurrentXP:           75,
		CurrentMasteryScore: prior,
		IsCorrect:           true,
		AttemptNumber:       2,
		UsedHint:            true,
		Mode:                ModeMain,
	})
	if res.XPAwarded != 35 { // 16 base + 6 correct@2 + 5 hint + 8 retry
		t.Errorf("XPAwarded = %d, want 35", res.XPAwarded)
	}
	if res.StrategyXP != 13 {
		t.Errorf("StrategyXP = %d, want 13", res.StrategyXP)
	}
	if res.NewXP != 110 {
		t.Errorf("NewXP = %d, want 110", res.NewXP)
	}
	// Retry-correct quality is 0.75; the 0.9 hinted-first-try rule must not apply.
	want := prior*0.78 + 0.75*0.22
	if math.Abs(res.NewMasteryScore-want) > 1e-9 {
		t.Errorf("NewMasteryScore = %f, want %f", res.NewMasteryScore, want)
	}
	// XP crossed the level-2 threshold but mastery sits far below the 0.82
	// floor, so the gate holds.
	if res.LeveledUp {
		t.Errorf("leveled up with mastery %f below floor", res.NewMasteryScore)
	}
}

func TestMilestoneBadgeKeys(t *testing.T) {
	keys := MilestoneBadgeKeys(MilestoneInput{
		Skill:         "evaluate",
		NewLevel:      5,
		IsBoss:        true,
		IsCorrect:     true,
		SolvedOnRetry: true,
	})
	want := map[string]bool{
		"track_evaluate_adept":    true,
		"track_evaluate_master":   true,
		"boss_challenge_clear":    true,
		"strategy_retry_recovery": true,
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys %v, want %d", len(keys), keys, len(want))
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("unexpected badge key %q", k)
		}
	}

	if got := MilestoneBadgeKeys(MilestoneInput{Skill: "infer", NewLevel: 2}); len(got) != 0 {
		t.Errorf("expected no keys at level 2 without boss/retry, got %v", got)
	}
}
