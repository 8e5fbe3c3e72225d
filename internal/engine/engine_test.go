package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/cogniz/internal/content"
	"github.com/abhisek/cogniz/internal/session"
	"github.com/abhisek/cogniz/internal/store"
)

func newTestEngine(t *testing.T, ageBand string) *Engine {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	lib, err := content.LoadBuiltin()
	if err != nil {
		t.Fatalf("load builtin packs: %v", err)
	}

	learner, err := s.Learners().Create(context.Background(), "riya", ageBand)
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	return New(s, lib, learner)
}

func wrongIndex(a *content.Activity) int {
	if a.Content.CorrectIndex == 0 {
		return 1
	}
	return 0
}

func TestEngine_StartSession(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if state.SessionID == "" {
		t.Error("expected generated session ID")
	}
	if state.CurrentPhase() != session.PhaseWarmup {
		t.Errorf("first phase = %s, want warmup", state.CurrentPhase())
	}
}

func TestEngine_CorrectAnswerWritesProgress(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil {
		t.Fatalf("NextRound: %v", err)
	}
	if activity == nil {
		t.Fatal("expected an activity for the adult band")
	}

	res, err := e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.IsCorrect || res.RetryOpen || res.Outcome == nil {
		t.Fatalf("result = correct %v retry %v outcome %v, want finalized correct",
			res.IsCorrect, res.RetryOpen, res.Outcome)
	}
	if res.Outcome.XPAwarded <= 0 {
		t.Errorf("XPAwarded = %d, want positive", res.Outcome.XPAwarded)
	}
	if state.PhaseIndex != 1 {
		t.Errorf("PhaseIndex after answer = %d, want 1", state.PhaseIndex)
	}

	ov, err := e.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if ov.Streak.CurrentStreak != 1 {
		t.Errorf("streak after first round = %d, want 1", ov.Streak.CurrentStreak)
	}
	var gainedXP bool
	for _, st := range ov.States {
		if st.XP > 0 {
			gainedXP = true
		}
	}
	if !gainedXP {
		t.Error("expected some skill to gain XP")
	}

	entry, err := e.store.Reviews().Get(ctx, e.learner.ID, activity.ID)
	if err != nil {
		t.Fatalf("Get review entry: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a review entry after the first finalized attempt")
	}
	if !entry.LastResult {
		t.Error("review entry LastResult = false, want true")
	}
}

func TestEngine_WrongFirstAnswerOpensRetry(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil || activity == nil {
		t.Fatalf("NextRound = (%v, %v), want activity", activity, err)
	}

	res, err := e.SubmitAnswer(ctx, state, activity, wrongIndex(activity))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.RetryOpen || res.Outcome != nil {
		t.Fatalf("wrong first answer: retry %v outcome %v, want open retry", res.RetryOpen, res.Outcome)
	}
	if res.Feedback.Hint == "" {
		t.Error("expected a hint on the retry")
	}
	if state.PhaseIndex != 0 {
		t.Errorf("PhaseIndex during retry = %d, want 0", state.PhaseIndex)
	}

	// Nothing finalized yet: no review entry, no streak.
	entry, err := e.store.Reviews().Get(ctx, e.learner.ID, activity.ID)
	if err != nil {
		t.Fatalf("Get review entry: %v", err)
	}
	if entry != nil {
		t.Error("review entry written before the round finalized")
	}

	res, err = e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex)
	if err != nil {
		t.Fatalf("retry SubmitAnswer: %v", err)
	}
	if res.Outcome == nil || !res.Outcome.RecoveryWin {
		t.Fatalf("retry outcome = %+v, want recovery win", res.Outcome)
	}
	if res.Outcome.StrategyXP == 0 {
		t.Error("recovery win StrategyXP = 0, want positive")
	}
}

func TestEngine_SessionDoesNotRepeatActivities(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	settings, err := e.SaveSettings(ctx, session.Settings{
		MainRounds: 4, BossEnabled: true, BossIntensity: 3,
		HintMode: session.HintGuided, DailyGoal: 3,
	})
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if len(state.Phases) != settings.MainRounds+2 {
		t.Fatalf("phase count = %d, want %d", len(state.Phases), settings.MainRounds+2)
	}

	seen := make(map[string]bool)
	for state.CurrentPhase() != session.PhaseRecap {
		activity, err := e.NextRound(ctx, state)
		if err != nil {
			t.Fatalf("NextRound: %v", err)
		}
		if activity == nil {
			t.Fatal("ran out of content before recap")
		}
		if seen[activity.ID] {
			t.Fatalf("activity %s repeated within one sitting", activity.ID)
		}
		seen[activity.ID] = true
		if _, err := e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
}

func TestEngine_QuestReflectsPlay(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	quest, err := e.Quest(ctx)
	if err != nil {
		t.Fatalf("Quest: %v", err)
	}
	if quest.RoundsToday != 0 || quest.IsComplete {
		t.Fatalf("fresh quest = %d rounds complete %v, want 0/false", quest.RoundsToday, quest.IsComplete)
	}

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil || activity == nil {
		t.Fatalf("NextRound = (%v, %v), want activity", activity, err)
	}
	if _, err := e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	quest, err = e.Quest(ctx)
	if err != nil {
		t.Fatalf("Quest after round: %v", err)
	}
	if quest.RoundsToday != 1 {
		t.Errorf("RoundsToday = %d, want 1", quest.RoundsToday)
	}
	if !quest.Completed.Warmup {
		t.Error("warmup step not marked complete after a warmup round")
	}
}

func TestEngine_WeeklyCountsAttempts(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil || activity == nil {
		t.Fatalf("NextRound = (%v, %v), want activity", activity, err)
	}
	if _, err := e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	report, err := e.Weekly(ctx)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if report.RoundsThisWeek != 1 {
		t.Errorf("RoundsThisWeek = %d, want 1", report.RoundsThisWeek)
	}
	if report.SessionsThisWeek != 1 {
		t.Errorf("SessionsThisWeek = %d, want 1", report.SessionsThisWeek)
	}
}

func TestEngine_NextRoundNilWithoutBandContent(t *testing.T) {
	e := newTestEngine(t, "4-6")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil {
		t.Fatalf("NextRound: %v", err)
	}
	if activity != nil {
		t.Errorf("NextRound for empty band = %v, want nil", activity)
	}
}

func TestEngine_SaveSettingsClamps(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	saved, err := e.SaveSettings(ctx, session.Settings{
		MainRounds: 99, BossEnabled: true, BossIntensity: 0,
		HintMode: "bogus", DailyGoal: -2,
	})
	if err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if saved.MainRounds != session.MaxMainRounds {
		t.Errorf("MainRounds = %d, want %d", saved.MainRounds, session.MaxMainRounds)
	}
	if saved.BossIntensity != 1 || saved.DailyGoal != session.MinDailyGoal {
		t.Errorf("clamped = intensity %d goal %d, want 1/%d",
			saved.BossIntensity, saved.DailyGoal, session.MinDailyGoal)
	}
	if saved.HintMode != session.HintGuided {
		t.Errorf("HintMode = %s, want guided", saved.HintMode)
	}

	got, err := e.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if got != saved {
		t.Errorf("reloaded settings = %+v, want %+v", got, saved)
	}
}

func TestEngine_ResetKeepsProfileWipesProgress(t *testing.T) {
	e := newTestEngine(t, "adult")
	ctx := context.Background()

	state, err := e.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	activity, err := e.NextRound(ctx, state)
	if err != nil || activity == nil {
		t.Fatalf("NextRound = (%v, %v), want activity", activity, err)
	}
	if _, err := e.SubmitAnswer(ctx, state, activity, activity.Content.CorrectIndex); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if err := e.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	ov, err := e.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	for _, st := range ov.States {
		if st.XP != 0 || st.Level != 1 {
			t.Errorf("%s after reset = level %d xp %d, want fresh state", st.Skill, st.Level, st.XP)
		}
	}
	if ov.Streak.CurrentStreak != 0 {
		t.Errorf("streak after reset = %d, want 0", ov.Streak.CurrentStreak)
	}

	snap, err := e.store.Snapshots().Latest(ctx, e.learner.ID)
	if err != nil {
		t.Fatalf("Latest snapshot: %v", err)
	}
	if snap == nil || len(snap.Data.SkillStates) == 0 {
		t.Fatalf("snapshot = %+v, want pre-reset skill states captured", snap)
	}
}

func TestEngine_ProfilesAndSwitch(t *testing.T) {
	eng := newTestEngine(t, "adult")
	ctx := context.Background()

	dev, err := eng.CreateProfile(ctx, "dev", "10-13")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if _, err := eng.CreateProfile(ctx, "dev", "adult"); err == nil {
		t.Error("CreateProfile with duplicate name = nil error, want error")
	}

	list, err := eng.Profiles(ctx)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(list))
	}

	other := eng.WithLearner(dev)
	if other.Learner().Name != "dev" {
		t.Errorf("switched learner = %q, want %q", other.Learner().Name, "dev")
	}
	if got := other.AgeBand(); got != content.Band10to13 {
		t.Errorf("switched band = %q, want %q", got, content.Band10to13)
	}
	// The original engine keeps its learner.
	if eng.Learner().Name != "riya" {
		t.Errorf("original learner = %q, want %q", eng.Learner().Name, "riya")
	}
}
