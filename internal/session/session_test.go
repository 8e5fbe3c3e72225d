package session

import (
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
)

func mainPlan() NextItemPlan {
	return NextItemPlan{
		Mode:             mastery.ModeMain,
		Skill:            skills.Analyze,
		TargetDifficulty: 2,
		Source:           SourceNewPool,
	}
}

func TestSettings_Phases(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     []Phase
	}{
		{
			"defaults",
			DefaultSettings(),
			[]Phase{PhaseWarmup, PhaseMain, PhaseBoss},
		},
		{
			"three mains no boss",
			Settings{MainRounds: 3, BossEnabled: false, BossIntensity: 3, HintMode: HintGuided, DailyGoal: 3},
			[]Phase{PhaseWarmup, PhaseMain, PhaseMain, PhaseMain},
		},
		{
			"main rounds clamped high",
			Settings{MainRounds: 9, BossEnabled: false, BossIntensity: 3, HintMode: HintGuided, DailyGoal: 3},
			[]Phase{PhaseWarmup, PhaseMain, PhaseMain, PhaseMain, PhaseMain},
		},
		{
			"main rounds clamped low",
			Settings{MainRounds: 0, BossEnabled: true, BossIntensity: 3, HintMode: HintGuided, DailyGoal: 3},
			[]Phase{PhaseWarmup, PhaseMain, PhaseBoss},
		},
	}

	for _, tt := range tests {
		got := tt.settings.Phases()
		if len(got) != len(tt.want) {
			t.Errorf("%s: phases = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: phase[%d] = %s, want %s", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSettings_Clamped(t *testing.T) {
	s := Settings{MainRounds: 0, BossIntensity: 9, HintMode: "bogus", DailyGoal: 42}.Clamped()

	if s.MainRounds != 1 {
		t.Errorf("MainRounds = %d, want 1", s.MainRounds)
	}
	if s.BossIntensity != 5 {
		t.Errorf("BossIntensity = %d, want 5", s.BossIntensity)
	}
	if s.HintMode != HintGuided {
		t.Errorf("HintMode = %s, want guided", s.HintMode)
	}
	if s.DailyGoal != 10 {
		t.Errorf("DailyGoal = %d, want 10", s.DailyGoal)
	}
}

func TestSessionState_PhaseProgression(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())

	want := []Phase{PhaseWarmup, PhaseMain, PhaseBoss, PhaseRecap, PhaseRecap}
	for i, w := range want {
		if got := state.CurrentPhase(); got != w {
			t.Errorf("step %d: phase = %s, want %s", i, got, w)
		}
		state.AdvancePhase()
	}
}

func TestHandleAnswer_CorrectFirstTry(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)

	out := HandleAnswer(state, true, now.Add(4*time.Second))

	if out == nil {
		t.Fatal("expected finalized outcome")
	}
	if !out.IsCorrect || out.AttemptNumber != 1 {
		t.Errorf("outcome = correct=%v attempt=%d, want correct attempt 1", out.IsCorrect, out.AttemptNumber)
	}
	if out.XPAwarded != 26 { // main base 16 + first-try 10
		t.Errorf("XPAwarded = %d, want 26", out.XPAwarded)
	}
	if out.RecoveryWin {
		t.Error("first-try correct must not be a recovery win")
	}
	if out.ResponseTimeMs != 4000 {
		t.Errorf("ResponseTimeMs = %d, want 4000", out.ResponseTimeMs)
	}
	if state.Rounds != 1 || state.FirstTryCorrect != 1 || state.Streak != 1 {
		t.Errorf("aggregates = rounds %d firstTry %d streak %d, want 1/1/1",
			state.Rounds, state.FirstTryCorrect, state.Streak)
	}
}

func TestHandleAnswer_WrongThenRetryCorrect(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	r := BeginRound(state, mainPlan(), "act-1", now)

	out := HandleAnswer(state, false, now)
	if out != nil {
		t.Fatal("wrong first answer must not finalize")
	}
	if r.Status != RoundAwaitingRetry || r.AttemptNumber != 2 {
		t.Errorf("round = status %d attempt %d, want awaiting-retry attempt 2", r.Status, r.AttemptNumber)
	}
	if !r.HintAvailable {
		t.Error("hint should surface after a wrong first answer")
	}
	if state.Rounds != 0 {
		t.Errorf("rounds = %d before finalization, want 0", state.Rounds)
	}

	out = HandleAnswer(state, true, now)
	if out == nil {
		t.Fatal("retry answer must finalize")
	}
	if !out.RecoveryWin {
		t.Error("correct retry should be a recovery win")
	}
	if out.XPAwarded != 22 { // main base 16 + second-try 6
		t.Errorf("XPAwarded = %d, want 22", out.XPAwarded)
	}
	if out.StrategyXP != 8 {
		t.Errorf("StrategyXP = %d, want 8", out.StrategyXP)
	}
	if state.Recoveries != 1 || state.FirstTryCorrect != 0 {
		t.Errorf("recoveries = %d firstTry = %d, want 1/0", state.Recoveries, state.FirstTryCorrect)
	}
}

func TestHandleAnswer_WrongTwiceFinalizesIncorrect(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)

	HandleAnswer(state, false, now)
	out := HandleAnswer(state, false, now)

	if out == nil {
		t.Fatal("second wrong answer must finalize")
	}
	if out.IsCorrect || out.RecoveryWin {
		t.Error("double miss is neither correct nor a recovery")
	}
	if out.XPAwarded != 18 { // main base 16 + incorrect 2
		t.Errorf("XPAwarded = %d, want 18", out.XPAwarded)
	}
	if state.Streak != 0 || state.Correct != 0 {
		t.Errorf("streak = %d correct = %d, want 0/0", state.Streak, state.Correct)
	}
}

func TestHandleAnswer_ExactlyOneFinalization(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)

	if out := HandleAnswer(state, true, now); out == nil {
		t.Fatal("expected finalization")
	}
	if out := HandleAnswer(state, true, now); out != nil {
		t.Error("second answer on a finalized round must be ignored")
	}
	if state.Rounds != 1 {
		t.Errorf("rounds = %d, want 1", state.Rounds)
	}
}

func TestAbandonRound_WritesNothing(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)
	HandleAnswer(state, false, now) // mid-retry

	AbandonRound(state)

	if state.CurrentRound != nil {
		t.Error("abandoned round should be cleared")
	}
	if state.Rounds != 0 || state.XP != 0 {
		t.Errorf("aggregates = rounds %d xp %d after abandon, want 0/0", state.Rounds, state.XP)
	}
}

func TestShowHint_RespectsHintMode(t *testing.T) {
	settings := DefaultSettings()
	settings.HintMode = HintOff
	state := NewSessionState("s1", settings)
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)

	if ShowHint(state) {
		t.Error("hints off: ShowHint should refuse")
	}

	HandleAnswer(state, false, now)
	if state.CurrentRound.HintAvailable {
		t.Error("hints off: retry must not surface a hint")
	}
}

func TestHandleAnswer_HintAffectsStrategyXP(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)

	HandleAnswer(state, false, now)
	if !ShowHint(state) {
		t.Fatal("expected hint to be shown")
	}
	out := HandleAnswer(state, true, now)

	if out.StrategyXP != 13 { // hint 5 + retry success 8
		t.Errorf("StrategyXP = %d, want 13", out.StrategyXP)
	}
	if state.HintsUsed != 1 {
		t.Errorf("HintsUsed = %d, want 1", state.HintsUsed)
	}
}

func TestRestart_ResetsAggregatesOnly(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()
	BeginRound(state, mainPlan(), "act-1", now)
	HandleAnswer(state, true, now)
	state.AdvancePhase()
	state.RecordLevelUp(skills.Analyze, 1, 2)
	state.RecordBadges([]string{"streak_3"})

	state.Restart()

	if state.PhaseIndex != 0 || state.CurrentPhase() != PhaseWarmup {
		t.Errorf("phase = %s index %d after restart, want warmup 0", state.CurrentPhase(), state.PhaseIndex)
	}
	if state.Rounds != 0 || state.XP != 0 || len(state.LevelUps) != 0 || len(state.Badges) != 0 {
		t.Error("restart must clear session aggregates")
	}
	if state.SessionID != "s1" {
		t.Errorf("SessionID = %s, want s1 preserved", state.SessionID)
	}
}

func TestBuildSummary(t *testing.T) {
	state := NewSessionState("s1", DefaultSettings())
	now := time.Now()

	BeginRound(state, mainPlan(), "act-1", now)
	HandleAnswer(state, true, now)

	boss := mainPlan()
	boss.Mode = mastery.ModeBoss
	boss.Skill = skills.Infer
	BeginRound(state, boss, "act-2", now)
	HandleAnswer(state, false, now)
	HandleAnswer(state, false, now)

	sum := BuildSummary(state)

	if sum.Rounds != 2 || sum.Correct != 1 {
		t.Errorf("summary = rounds %d correct %d, want 2/1", sum.Rounds, sum.Correct)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy)
	}
	if sum.XP != 26+30 { // main 26, boss 28+2
		t.Errorf("XP = %d, want 56", sum.XP)
	}
	if len(sum.SkillRecaps) != 2 {
		t.Fatalf("SkillRecaps = %d entries, want 2", len(sum.SkillRecaps))
	}
	// Canonical skill order: analyze before infer.
	if sum.SkillRecaps[0].Skill != skills.Analyze || sum.SkillRecaps[1].Skill != skills.Infer {
		t.Errorf("recap order = %s,%s want analyze,infer", sum.SkillRecaps[0].Skill, sum.SkillRecaps[1].Skill)
	}
}
