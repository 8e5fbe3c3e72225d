package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/cogniz/internal/mastery"
	"github.com/abhisek/cogniz/internal/skills"
	"github.com/abhisek/cogniz/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testLearner(t *testing.T, s *Store, name string) *Learner {
	t.Helper()
	l, err := s.Learners().Create(context.Background(), name, "adult")
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	return l
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s: %v", tt.pragma, err)
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "app.db")
	t.Setenv("COGNIZ_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("DefaultDBPath = %q, want %q", got, want)
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestLearnerRepo_CreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := testLearner(t, s, "riya")
	if created.ID == "" {
		t.Fatal("expected generated learner ID")
	}

	got, err := s.Learners().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Name != "riya" || got.AgeBand != "adult" {
		t.Errorf("Get = %+v, want name riya age band adult", got)
	}

	byName, err := s.Learners().GetByName(ctx, "riya")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Errorf("GetByName = %+v, want ID %s", byName, created.ID)
	}

	missing, err := s.Learners().GetByName(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetByName missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetByName for unknown name = %+v, want nil", missing)
	}
}

func TestLearnerRepo_List(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	testLearner(t, s, "first")
	testLearner(t, s, "second")

	list, err := s.Learners().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d learners, want 2", len(list))
	}
}

func TestSkillStateRepo_LoadInitializesDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	states, err := s.SkillStates().Load(ctx, l.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(states) != skills.Count {
		t.Fatalf("Load returned %d states, want %d", len(states), skills.Count)
	}
	for i, sk := range skills.All() {
		if states[i].Skill != sk {
			t.Errorf("states[%d].Skill = %s, want %s", i, states[i].Skill, sk)
		}
		if states[i].Level != 1 || states[i].XP != 0 {
			t.Errorf("%s default state = level %d xp %d, want level 1 xp 0",
				sk, states[i].Level, states[i].XP)
		}
	}
}

func TestSkillStateRepo_UpsertRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	st := mastery.SkillState{
		Skill:        skills.Analyze,
		Level:        3,
		XP:           240,
		MasteryScore: 0.71,
		UpdatedAt:    time.Now(),
	}
	if err := s.SkillStates().Upsert(ctx, l.ID, st); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// A second upsert must update the same row, not add one.
	st.Level = 4
	if err := s.SkillStates().Upsert(ctx, l.ID, st); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	states, err := s.SkillStates().Load(ctx, l.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(states) != skills.Count {
		t.Fatalf("Load returned %d states, want %d", len(states), skills.Count)
	}
	for _, got := range states {
		if got.Skill != skills.Analyze {
			continue
		}
		if got.Level != 4 || got.XP != 240 || got.MasteryScore != 0.71 {
			t.Errorf("analyze state = level %d xp %d mastery %.2f, want 4/240/0.71",
				got.Level, got.XP, got.MasteryScore)
		}
	}
}

func TestReviewRepo_UpsertReschedules(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")
	now := time.Now()

	first := spacedrep.ReviewEntry{
		ActivityID:   "act-1",
		Skill:        skills.Infer,
		DueAt:        now.AddDate(0, 0, 1),
		IntervalDays: 1,
		Ease:         2.5,
		LastResult:   false,
	}
	if err := s.Reviews().Upsert(ctx, l.ID, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	second := first
	second.DueAt = now.AddDate(0, 0, 3)
	second.IntervalDays = 3
	second.Ease = 2.6
	second.LastResult = true
	if err := s.Reviews().Upsert(ctx, l.ID, second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	all, err := s.Reviews().All(ctx, l.ID)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("All returned %d entries, want 1", len(all))
	}
	got := all[0]
	if got.IntervalDays != 3 || got.Ease != 2.6 || !got.LastResult {
		t.Errorf("rescheduled entry = interval %d ease %.2f result %v, want 3/2.60/true",
			got.IntervalDays, got.Ease, got.LastResult)
	}
}

func TestReviewRepo_DueFiltersAndOrders(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")
	now := time.Now()

	entries := []spacedrep.ReviewEntry{
		{ActivityID: "overdue-far", Skill: skills.Analyze, DueAt: now.AddDate(0, 0, -3), IntervalDays: 1, Ease: 2.5},
		{ActivityID: "overdue-near", Skill: skills.Infer, DueAt: now.AddDate(0, 0, -1), IntervalDays: 1, Ease: 2.5},
		{ActivityID: "future", Skill: skills.Evaluate, DueAt: now.AddDate(0, 0, 2), IntervalDays: 2, Ease: 2.5},
	}
	for _, e := range entries {
		if err := s.Reviews().Upsert(ctx, l.ID, e); err != nil {
			t.Fatalf("Upsert %s: %v", e.ActivityID, err)
		}
	}

	due, err := s.Reviews().Due(ctx, l.ID, now, 0)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("Due returned %d entries, want 2", len(due))
	}
	if due[0].ActivityID != "overdue-far" || due[1].ActivityID != "overdue-near" {
		t.Errorf("Due order = [%s %s], want [overdue-far overdue-near]",
			due[0].ActivityID, due[1].ActivityID)
	}

	limited, err := s.Reviews().Due(ctx, l.ID, now, 1)
	if err != nil {
		t.Fatalf("Due limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ActivityID != "overdue-far" {
		t.Errorf("Due with limit 1 = %v, want single overdue-far", limited)
	}
}

func TestBadgeRepo_EarnedAndInsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	if err := s.Badges().InsertBadges(ctx, l.ID, []string{"analyze_adept", "streak_bronze"}); err != nil {
		t.Fatalf("InsertBadges: %v", err)
	}

	earned, err := s.Badges().EarnedBadgeKeys(ctx, l.ID, []string{"analyze_adept", "boss_challenge_clear"})
	if err != nil {
		t.Fatalf("EarnedBadgeKeys: %v", err)
	}
	if !earned["analyze_adept"] {
		t.Error("expected analyze_adept to be earned")
	}
	if earned["boss_challenge_clear"] {
		t.Error("boss_challenge_clear reported earned, want not earned")
	}

	list, err := s.Badges().List(ctx, l.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("List returned %d badges, want 2", len(list))
	}
}

func TestBadgeRepo_EarnedEmptyKeys(t *testing.T) {
	s := openTestStore(t)
	l := testLearner(t, s, "riya")

	earned, err := s.Badges().EarnedBadgeKeys(context.Background(), l.ID, nil)
	if err != nil {
		t.Fatalf("EarnedBadgeKeys: %v", err)
	}
	if len(earned) != 0 {
		t.Errorf("EarnedBadgeKeys with no keys = %v, want empty", earned)
	}
}

func TestSettingsRepo_DefaultsAndSave(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	got, err := s.Settings().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != DefaultSettingsData() {
		t.Errorf("unsaved settings = %+v, want defaults %+v", got, DefaultSettingsData())
	}

	saved := SettingsData{MainRounds: 3, BossEnabled: false, BossIntensity: 4, HintMode: "minimal", DailyGoal: 5}
	if err := s.Settings().Save(ctx, l.ID, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Save again to exercise the upsert path.
	saved.DailyGoal = 6
	if err := s.Settings().Save(ctx, l.ID, saved); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err = s.Settings().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if got != saved {
		t.Errorf("saved settings = %+v, want %+v", got, saved)
	}
}

func TestStreakRepo_DefaultAndSave(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	got, err := s.Streaks().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentStreak != 0 || got.LastPlayedDate != "" {
		t.Errorf("unsaved streak = %+v, want zero value", got)
	}

	want := StreakData{CurrentStreak: 4, LastPlayedDate: "2026-03-10"}
	if err := s.Streaks().Save(ctx, l.ID, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want.CurrentStreak = 5
	if err := s.Streaks().Save(ctx, l.ID, want); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err = s.Streaks().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if got != want {
		t.Errorf("saved streak = %+v, want %+v", got, want)
	}
}

func TestSnapshotRepo_SaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	for i := 1; i <= 3; i++ {
		data := SnapshotData{
			Version: i,
			Streak:  StreakData{CurrentStreak: i},
		}
		if err := s.Snapshots().Save(ctx, l.ID, data); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	latest, err := s.Snapshots().Latest(ctx, l.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.Data.Version != 3 {
		t.Fatalf("Latest = %+v, want version 3", latest)
	}

	if err := s.Snapshots().Prune(ctx, l.ID, 1); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	latest, err = s.Snapshots().Latest(ctx, l.ID)
	if err != nil {
		t.Fatalf("Latest after prune: %v", err)
	}
	if latest == nil || latest.Data.Version != 3 {
		t.Errorf("Latest after prune = %+v, want version 3 kept", latest)
	}
}

func TestSnapshotRepo_LatestMissing(t *testing.T) {
	s := openTestStore(t)
	l := testLearner(t, s, "riya")

	latest, err := s.Snapshots().Latest(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest != nil {
		t.Errorf("Latest with no snapshots = %+v, want nil", latest)
	}
}

func appendAttempt(t *testing.T, s *Store, learnerID string, sk skills.Skill, attemptNum int, correct bool) {
	t.Helper()
	err := s.Events().AppendAttempt(context.Background(), AttemptEventData{
		LearnerID:      learnerID,
		SessionID:      "sess-1",
		RoundID:        "round-1",
		ActivityID:     "act-1",
		Skill:          sk,
		Mode:           "main",
		AttemptNumber:  attemptNum,
		ChoiceIndex:    0,
		IsCorrect:      correct,
		ResponseTimeMs: 4000,
		XPAwarded:      26,
	})
	if err != nil {
		t.Fatalf("AppendAttempt: %v", err)
	}
}

func TestEventRepo_RecentAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	l := testLearner(t, s, "riya")

	appendAttempt(t, s, l.ID, skills.Analyze, 1, false)
	appendAttempt(t, s, l.ID, skills.Infer, 1, true)
	appendAttempt(t, s, l.ID, skills.Evaluate, 1, true)

	got, err := s.Events().RecentAttempts(context.Background(), l.ID, 2)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentAttempts returned %d rows, want 2", len(got))
	}
	if got[0].Skill != skills.Evaluate || got[1].Skill != skills.Infer {
		t.Errorf("RecentAttempts order = [%s %s], want [evaluate infer]",
			got[0].Skill, got[1].Skill)
	}
}

func TestEventRepo_FirstAttemptsExcludeRetries(t *testing.T) {
	s := openTestStore(t)
	l := testLearner(t, s, "riya")

	appendAttempt(t, s, l.ID, skills.Analyze, 1, false)
	appendAttempt(t, s, l.ID, skills.Analyze, 2, true)
	appendAttempt(t, s, l.ID, skills.Infer, 1, true)

	now := time.Now()
	got, err := s.Events().FirstAttemptsBetween(
		context.Background(), l.ID, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("FirstAttemptsBetween: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FirstAttemptsBetween returned %d rows, want 2", len(got))
	}
	for _, a := range got {
		if a.AttemptNumber != 1 {
			t.Errorf("attempt number = %d, want 1", a.AttemptNumber)
		}
	}
}

func TestEventRepo_AppendSession(t *testing.T) {
	s := openTestStore(t)
	l := testLearner(t, s, "riya")

	err := s.Events().AppendSession(context.Background(), SessionEventData{
		LearnerID:    l.ID,
		SessionID:    "sess-1",
		Action:       "completed",
		Rounds:       3,
		Correct:      2,
		XP:           68,
		StrategyXP:   8,
		DurationSecs: 240,
	})
	if err != nil {
		t.Fatalf("AppendSession: %v", err)
	}
}

func TestResetLearner_WipesProgressKeepsProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")

	if _, err := s.SkillStates().Load(ctx, l.ID); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.Badges().InsertBadges(ctx, l.ID, []string{"streak_bronze"}); err != nil {
		t.Fatalf("InsertBadges: %v", err)
	}
	if err := s.Streaks().Save(ctx, l.ID, StreakData{CurrentStreak: 2, LastPlayedDate: "2026-03-10"}); err != nil {
		t.Fatalf("Save streak: %v", err)
	}
	appendAttempt(t, s, l.ID, skills.Analyze, 1, true)
	if err := s.Snapshots().Save(ctx, l.ID, SnapshotData{Version: 1}); err != nil {
		t.Fatalf("Save snapshot: %v", err)
	}

	if err := s.ResetLearner(ctx, l.ID); err != nil {
		t.Fatalf("ResetLearner: %v", err)
	}

	streak, err := s.Streaks().Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get streak: %v", err)
	}
	if streak.CurrentStreak != 0 {
		t.Errorf("streak after reset = %d, want 0", streak.CurrentStreak)
	}

	badges, err := s.Badges().List(ctx, l.ID)
	if err != nil {
		t.Fatalf("List badges: %v", err)
	}
	if len(badges) != 0 {
		t.Errorf("badges after reset = %d, want 0", len(badges))
	}

	attempts, err := s.Events().RecentAttempts(ctx, l.ID, 0)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("attempts after reset = %d, want 0", len(attempts))
	}

	// Profile and snapshot survive the reset.
	if got, err := s.Learners().Get(ctx, l.ID); err != nil || got == nil {
		t.Errorf("learner after reset = (%+v, %v), want profile kept", got, err)
	}
	if snap, err := s.Snapshots().Latest(ctx, l.ID); err != nil || snap == nil {
		t.Errorf("snapshot after reset = (%+v, %v), want snapshot kept", snap, err)
	}
}

func TestDeleteLearner_RemovesEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	l := testLearner(t, s, "riya")
	keep := testLearner(t, s, "dev")

	appendAttempt(t, s, l.ID, skills.Interpret, 1, true)
	if err := s.Snapshots().Save(ctx, l.ID, SnapshotData{Version: 1}); err != nil {
		t.Fatalf("Save snapshot: %v", err)
	}

	if err := s.DeleteLearner(ctx, l.ID); err != nil {
		t.Fatalf("DeleteLearner: %v", err)
	}

	if got, err := s.Learners().Get(ctx, l.ID); err != nil || got != nil {
		t.Errorf("learner after delete = (%+v, %v), want gone", got, err)
	}
	if snap, err := s.Snapshots().Latest(ctx, l.ID); err != nil || snap != nil {
		t.Errorf("snapshot after delete = (%+v, %v), want gone", snap, err)
	}
	if got, err := s.Learners().Get(ctx, keep.ID); err != nil || got == nil {
		t.Errorf("other learner = (%+v, %v), want untouched", got, err)
	}
}
